package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hairlab-backoffice/backend"
	"hairlab-backoffice/billing"
	"hairlab-backoffice/models"
	"hairlab-backoffice/services"
	"hairlab-backoffice/utils"
)

// FormValue accepts a JSON string, number or null, the way form inputs arrive.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = FormValue(n.String())
	return nil
}

func currentAuth(c *gin.Context) (*models.AuthContext, bool) {
	auth, ok := utils.CurrentAuth(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Authorization required")
		return nil, false
	}
	return auth, true
}

// respondError maps service and backend errors onto HTTP responses.
func respondError(c *gin.Context, err error, fallback string) {
	var verr *billing.ValidationError
	if errors.As(err, &verr) {
		fields := make([]utils.FieldError, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, utils.FieldError{Field: f.Field, Message: f.Message})
		}
		utils.RespondWithAppError(c, utils.NewValidationError(verr.Message, fields), fallback)
		return
	}

	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		utils.RespondWithAppError(c, appErr, fallback)
		return
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		utils.RespondWithError(c, apiErr.Status, backend.Message(err, fallback))
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg(fallback)
	utils.RespondWithError(c, http.StatusBadGateway, fallback)
}

func respondInvalid(c *gin.Context, fields []utils.FieldError) bool {
	if len(fields) == 0 {
		return false
	}
	utils.RespondWithAppError(c, utils.NewValidationError("Please correct the highlighted fields", fields), "")
	return true
}

// listQuery reads search, per-field filters, sorting and paging from the query string.
func listQuery(c *gin.Context, fields []string, defaultPerPage int) services.ListQuery {
	filters := make(map[string]string)
	for _, f := range fields {
		if v := c.Query(f); v != "" {
			filters[f] = v
		}
	}
	page, perPage := utils.PageParams(c, defaultPerPage)
	return services.ListQuery{
		Search:    c.Query("search"),
		Filters:   filters,
		SortBy:    c.Query("sortBy"),
		SortOrder: c.DefaultQuery("sortOrder", "asc"),
		Page:      page,
		PerPage:   perPage,
	}
}

type fieldErrors []utils.FieldError

func (f *fieldErrors) add(field, message string) {
	*f = append(*f, utils.FieldError{Field: field, Message: message})
}
