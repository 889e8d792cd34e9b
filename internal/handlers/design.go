package handlers

import (
	"net/http"
	"strings"

	"technogroop/internal/design"
)

// SetDesign handles the footer design switcher. Unknown variants are
// ignored. When the visitor was on a themed home page they land on the home
// page of the chosen design; anywhere else they return to where they were.
func (s *Site) SetDesign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locale := localeFromCtx(ctx)
	sess := design.SessionFromCtx(ctx)

	changed := false
	if v, ok := design.ParseVariant(r.PostFormValue("variant")); ok && sess != nil {
		changed = sess.Set(v)
	}

	current := design.FromCtx(ctx)
	target := r.PostFormValue("from")
	if !isLocalPath(target) {
		target = "/" + string(locale) + "/" + current.HomeRoute()
	}
	if changed && design.IsHomePath(target) {
		target = "/" + string(locale) + "/" + current.HomeRoute()
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

// isLocalPath reports whether p is a same-origin absolute path.
func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.Contains(p, `\`)
}
