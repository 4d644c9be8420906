package openapi

import (
	"embed"
	"io/fs"
)

// PredictContract is the embedded description of the prediction service,
// addressable with SourceFromFS against ContractsFS.
const PredictContract = "predict.yaml"

// PredictOperationID is the operationId of POST /predict in PredictContract.
const PredictOperationID = "predictPrice"

//go:embed contracts/*.yaml
var embeddedContracts embed.FS

// ContractsFS exposes the embedded contracts rooted at the contracts
// directory.
func ContractsFS() fs.FS {
	sub, err := fs.Sub(embeddedContracts, "contracts")
	if err != nil {
		return embeddedContracts
	}
	return sub
}
