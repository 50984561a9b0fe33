package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/hpungsan/morsesub/internal/ops"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	env      *ops.Env
	renderer *Renderer
}

// HandleIndex handles GET /: the solve form.
func (h *Handlers) HandleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderer.renderPage(w, "index", IndexPageData{
		PageData: PageData{
			Title:   "Solve",
			Version: h.renderer.version,
			Nav:     "solve",
		},
		Messages: ops.Messages(h.env).Items,
	})
}

// HandleSolve handles GET /solve?m=A&m=B: renders the Markdown report.
func (h *Handlers) HandleSolve(w http.ResponseWriter, r *http.Request) {
	ids := messageParams(r)
	parallel := parseBoolParam(r, "parallel")

	result, err := ops.Solve(r.Context(), h.env, ops.SolveInput{
		Messages: ids,
		Parallel: parallel,
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, "solve", SolvePageData{
		PageData: PageData{
			Title:   strings.Join(ids, " − "),
			Version: h.renderer.version,
			Nav:     "solve",
		},
		Query:    ids,
		Parallel: parallel,
		Report:   h.renderer.renderMarkdown(ops.RenderMarkdown(result)),
	})
}

// HandleMessages handles GET /messages: the known message table.
func (h *Handlers) HandleMessages(w http.ResponseWriter, r *http.Request) {
	h.renderer.renderPage(w, "messages", MessagesPageData{
		PageData: PageData{
			Title:   "Messages",
			Version: h.renderer.version,
			Nav:     "messages",
		},
		Items: ops.Messages(h.env).Items,
	})
}

// HandleAPISolve handles GET /api/solve?m=A&m=B: JSON solve output.
func (h *Handlers) HandleAPISolve(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Solve(r.Context(), h.env, ops.SolveInput{
		Messages: messageParams(r),
		Parallel: parseBoolParam(r, "parallel"),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}

// HandleAPISubtract handles GET /api/subtract?haystack=A&needle=B.
func (h *Handlers) HandleAPISubtract(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Subtract(r.Context(), h.env, ops.SubtractInput{
		Haystack: r.URL.Query().Get("haystack"),
		Needle:   r.URL.Query().Get("needle"),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}

// messageParams collects message identifiers from repeated "m" parameters
// and from a space- or comma-separated "q" parameter, in that order.
func messageParams(r *http.Request) []string {
	query := r.URL.Query()
	ids := make([]string, 0, len(query["m"]))
	for _, m := range query["m"] {
		if m = strings.TrimSpace(m); m != "" {
			ids = append(ids, m)
		}
	}
	q := strings.ReplaceAll(query.Get("q"), ",", " ")
	ids = append(ids, strings.Fields(q)...)
	return ids
}

// parseBoolParam parses a boolean query parameter; absent or invalid means false.
func parseBoolParam(r *http.Request, key string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(key))
	return err == nil && v
}
