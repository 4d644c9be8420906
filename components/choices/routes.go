package choices

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-priceform/pkg/model"
)

// DefaultBasePath is where the option lists are mounted by default.
const DefaultBasePath = "/options"

// RegisterRoutes mounts one GET/HEAD route per categorical field of schema
// under basePath and returns the mounted paths in schema order.
func RegisterRoutes(router gin.IRouter, basePath string, schema model.Schema, fns ...OptionFn) []string {
	base := normalizeBase(basePath)
	var paths []string
	for _, def := range schema.Fields() {
		if def.Kind != model.FieldKindCategorical {
			continue
		}
		path := base + "/" + def.Name
		handler := Handler(def, fns...)
		router.GET(path, handler)
		router.HEAD(path, handler)
		paths = append(paths, path)
	}
	return paths
}

func normalizeBase(basePath string) string {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return DefaultBasePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	return strings.TrimRight(basePath, "/")
}
