package content

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olegiv/ocms-langmap/internal/i18n"
	"github.com/olegiv/ocms-langmap/internal/util"
)

// ValidationError describes one invalid listing entry.
type ValidationError struct {
	Index   int    `json:"index"`
	Slug    string `json:"slug,omitempty"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	id := strconv.Itoa(e.Index)
	if e.Slug != "" {
		id += " (" + e.Slug + ")"
	}
	return "article " + id + ": " + e.Message
}

// ValidationErrors collects every problem found in a listing.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d invalid articles: %s", len(errs), strings.Join(msgs, "; "))
}

// Validate checks the listing against the supported languages. Slugs may be
// nested ("2024/post"); every segment must be a valid slug. A translation
// group holds at most one article per language. It returns nil when the
// listing is valid.
func (s *Store) Validate(langs *i18n.Set) error {
	var errs ValidationErrors
	seen := make(map[string]bool, len(s.articles))
	groups := make(map[string]bool)

	for idx, a := range s.articles {
		if a.Slug == "" {
			errs = append(errs, ValidationError{Index: idx, Message: "missing slug"})
		} else {
			for _, seg := range strings.Split(a.Slug, "/") {
				if !util.IsValidSlug(seg) {
					errs = append(errs, ValidationError{Index: idx, Slug: a.Slug, Message: "invalid slug format"})
					break
				}
			}
		}

		switch {
		case a.Language == "":
			errs = append(errs, ValidationError{Index: idx, Slug: a.Slug, Message: "missing language"})
		case !langs.IsSupported(a.Language):
			errs = append(errs, ValidationError{Index: idx, Slug: a.Slug, Message: fmt.Sprintf("unsupported language %q", a.Language)})
		}

		k := key(a.Language, a.Slug)
		if seen[k] {
			errs = append(errs, ValidationError{Index: idx, Slug: a.Slug, Message: "duplicate slug for language " + a.Language})
		}
		seen[k] = true

		if a.HasTranslationGroup() {
			g := a.TranslationID + "\x00" + a.Language
			if groups[g] {
				errs = append(errs, ValidationError{Index: idx, Slug: a.Slug, Message: fmt.Sprintf("translation group %q already has a %s article", a.TranslationID, a.Language)})
			}
			groups[g] = true
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
