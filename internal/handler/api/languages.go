package api

import (
	"net/http"

	"github.com/olegiv/ocms-langmap/internal/middleware"
)

// LanguageResponse describes one supported language.
type LanguageResponse struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	Flag       string `json:"flag,omitempty"`
	Direction  string `json:"direction"`
	IsDefault  bool   `json:"is_default"`
	HomePath   string `json:"home_path"`
}

// LanguagesResponse lists the supported languages and the language
// negotiated for the request.
type LanguagesResponse struct {
	Default   string                   `json:"default"`
	Preferred *middleware.LanguageInfo `json:"preferred,omitempty"`
	Languages []LanguageResponse       `json:"languages"`
}

// ListLanguages handles GET /api/v1/languages.
func (h *Handler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	langs := h.languages()

	resp := LanguagesResponse{
		Default:   langs.Default(),
		Preferred: middleware.GetLanguage(r),
		Languages: make([]LanguageResponse, 0, len(langs.Codes())),
	}
	for _, l := range langs.Languages() {
		resp.Languages = append(resp.Languages, LanguageResponse{
			Code:       l.Code,
			Name:       l.Name,
			NativeName: l.NativeName,
			Flag:       l.Flag,
			Direction:  l.Direction,
			IsDefault:  l.IsDefault,
			HomePath:   langs.HomePath(l.Code),
		})
	}

	WriteSuccess(w, resp, &Meta{Total: len(resp.Languages)})
}
