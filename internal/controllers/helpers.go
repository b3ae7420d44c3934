package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/middleware"
	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

var validate = validator.New()

const maxBodyBytes = 1 << 20

// decodeRequest fills dst from a JSON body or from url-encoded or multipart
// form fields. Form values are trimmed, except passwords which are taken
// verbatim, and blank fields are dropped so they decode as zero values.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		err := json.NewDecoder(r.Body).Decode(dst)
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return err
		}
	} else if err := r.ParseForm(); err != nil {
		return err
	}
	fields := make(map[string]string, len(r.PostForm))
	for k, vs := range r.PostForm {
		if len(vs) == 0 {
			continue
		}
		v := vs[0]
		if !isSecretField(k) {
			v = strings.TrimSpace(v)
		}
		if v != "" {
			fields[k] = v
		}
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func isSecretField(name string) bool {
	return strings.Contains(name, "password")
}

// decodeAndValidate writes the 400 itself and reports whether to continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any, back string) bool {
	if err := decodeRequest(w, r, dst); err != nil {
		if utils.WantsJSON(r) {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", nil, err)
		} else {
			utils.RedirectWithFlash(w, r, back, "Invalid request.")
		}
		return false
	}
	if err := validate.Struct(dst); err != nil {
		if utils.WantsJSON(r) {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", validationDetails(err), err)
		} else {
			utils.RedirectWithFlash(w, r, back, "Please check the form and try again.")
		}
		return false
	}
	return true
}

func validationDetails(err error) map[string]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

// respondAction answers a successful state change: JSON for programmatic
// callers, a 303 with a flash for browsers.
func respondAction(w http.ResponseWriter, r *http.Request, status int, msg, redirect string) {
	if utils.WantsJSON(r) {
		utils.RespondWithJSON(w, status, utils.ActionResponse{OK: true, Message: msg, Redirect: redirect})
		return
	}
	utils.RedirectWithFlash(w, r, redirect, msg)
}

// fail reports err. Browsers are sent back with a flash unless the error
// is a missing record or a server fault, which keep their HTTP status.
func fail(w http.ResponseWriter, r *http.Request, err error, back string) {
	appErr := utils.AsAppError(err)
	if utils.WantsJSON(r) || appErr.StatusCode == http.StatusNotFound || appErr.StatusCode >= http.StatusInternalServerError {
		utils.HandleAppError(w, appErr)
		return
	}
	utils.RedirectWithFlash(w, r, back, appErr.Message)
}

// failFlash is fail for screens where a missing record is also flashed.
func failFlash(w http.ResponseWriter, r *http.Request, err error, back string) {
	appErr := utils.AsAppError(err)
	if utils.WantsJSON(r) || appErr.StatusCode >= http.StatusInternalServerError {
		utils.HandleAppError(w, appErr)
		return
	}
	utils.RedirectWithFlash(w, r, back, appErr.Message)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, utils.NewNotFound("Not found.")
	}
	return id, nil
}

func principal(r *http.Request) *models.Principal {
	return middleware.PrincipalFrom(r.Context())
}

// respondItem is respondAction for creates and edits; JSON callers also
// receive the stored row.
func respondItem(w http.ResponseWriter, r *http.Request, status int, msg, redirect string, item any) {
	if utils.WantsJSON(r) {
		utils.RespondWithJSON(w, status, dtos.ItemResponse{OK: true, Message: msg, Redirect: redirect, Item: item})
		return
	}
	utils.RedirectWithFlash(w, r, redirect, msg)
}

func respondList(w http.ResponseWriter, items any) {
	utils.RespondWithJSON(w, http.StatusOK, dtos.ListResponse{Items: items})
}
