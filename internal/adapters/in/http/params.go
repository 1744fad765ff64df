package http

import (
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func bindTrackerID(c echo.Context) (kernel.UUID, error) {
	var id openapi_types.UUID
	if err := runtime.BindStyledParameterWithOptions("simple", "trackerId", c.Param("trackerId"), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		}); err != nil {
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(id[:])
}

// bindFullDetails reads the optional fullDetails query flag.
func bindFullDetails(c echo.Context) (bool, error) {
	var fullDetails *bool
	if err := runtime.BindQueryParameter("form", true, false, "fullDetails", c.QueryParams(), &fullDetails); err != nil {
		return false, err
	}

	return fullDetails != nil && *fullDetails, nil
}
