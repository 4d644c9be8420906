package choices

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-priceform/pkg/model"
)

type response struct {
	Data []Choice `json:"data"`
}

// Handler answers option searches for one categorical field.
func Handler(def model.FieldDefinition, fns ...OptionFn) gin.HandlerFunc {
	opts := NewOptions(fns...)
	return func(c *gin.Context) {
		query := c.Query(opts.SearchParam)
		limit := parseInt(c.Query(opts.LimitParam))

		results := SearchField(def, query, limit, opts)
		if c.Request.Method == http.MethodHead {
			c.Header("Content-Type", "application/json; charset=utf-8")
			c.Status(http.StatusOK)
			return
		}
		c.JSON(http.StatusOK, response{Data: results})
	}
}

func parseInt(raw string) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
