package web

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"clubadmin/internal/adapters/http/middleware"
	"clubadmin/internal/application/listutil"
	"clubadmin/internal/application/orchestrators"
	"clubadmin/internal/application/projections"
	activityDomain "clubadmin/internal/domain/activity"
	"clubadmin/internal/domain/removal"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// renderMarkdown converts authored markdown to HTML; on render failure
// the raw text is returned as-is for the client to escape.
func renderMarkdown(md string) string {
	if md == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return md
	}
	return buf.String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// handleLogin handles POST /api/login
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	input := orchestrators.LoginInput{}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	deps := orchestrators.LoginDeps{AccountStore: stores.AccountStore}
	result, err := orchestrators.ExecuteLogin(r.Context(), input, deps)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := sessions.Create(result.AccountID, result.Email, result.Role)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)
	writeJSON(w, http.StatusOK, result)
}

// handleLogout handles POST /api/logout
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err == nil {
		sessions.Delete(cookie.Value)
	}
	middleware.ClearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// handleActivities handles GET (list), POST (save) and DELETE for /api/activities
func handleActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		q := r.URL.Query()
		query := projections.GetActivityListQuery{
			Page:   listutil.ParsePageParams(q),
			Filter: listutil.ParseFilterParams(q, []string{"kind"}),
		}
		deps := projections.GetActivityListDeps{ActivityStore: stores.ActivityStore}

		result, err := projections.QueryGetActivityList(ctx, timeNow(), query, deps)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)

	case "POST":
		if !middleware.IsAdmin(ctx) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		var a activityDomain.Activity
		if err := strictDecode(r, &a); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		sess, _ := middleware.GetSessionFromContext(ctx)
		input := orchestrators.SaveActivityInput{Activity: a, CreatedBy: sess.AccountID}
		deps := orchestrators.SaveActivityDeps{ActivityStore: stores.ActivityStore}

		saved, err := orchestrators.ExecuteSaveActivity(ctx, timeNow(), input, deps)
		if err != nil {
			// Validation failures are the client's fault
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"ID": saved.ID})

	case "DELETE":
		if !middleware.IsAdmin(ctx) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "missing id", http.StatusBadRequest)
			return
		}
		if err := stores.ActivityStore.Delete(ctx, id); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleActivitySchedule handles GET /api/activities/schedule?id=
func handleActivitySchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	deps := projections.GetActivityScheduleDeps{ActivityStore: stores.ActivityStore}
	view, err := projections.QueryGetActivitySchedule(r.Context(), deps, id)
	if err != nil {
		internalError(w, err)
		return
	}

	// Markdown rendering is a presentation concern, applied here rather
	// than in the projection.
	if view.Day != nil {
		renderDaySlots(view.Day)
	}
	for wi := range view.Weeks {
		for di := range view.Weeks[wi].Days {
			if d := view.Weeks[wi].Days[di].Day; d != nil {
				renderDaySlots(d)
			}
		}
	}
	writeJSON(w, http.StatusOK, view)
}

func renderDaySlots(day *projections.DayView) {
	for i := range day.Slots {
		day.Slots[i].ActivitiesHTML = renderMarkdown(day.Slots[i].Activities)
	}
}

// handleActivityStatus handles GET /api/activities/status?id=
func handleActivityStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	deps := projections.GetActivityStatusDeps{ActivityStore: stores.ActivityStore}
	result, err := projections.QueryGetActivityStatus(r.Context(), timeNow(), deps, id)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleRemovalHistory handles GET /api/removals?member_id=
func handleRemovalHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	memberID := r.URL.Query().Get("member_id")
	if memberID == "" {
		http.Error(w, "missing member_id", http.StatusBadRequest)
		return
	}

	deps := projections.GetRemovalHistoryDeps{RemovalStore: stores.RemovalStore}
	result, err := projections.QueryGetRemovalHistory(r.Context(), deps, memberID)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleRemoveMember handles POST /api/removals/remove
func handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		MemberID    string
		MemberEmail string
		Reason      string
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	sess, _ := middleware.GetSessionFromContext(r.Context())
	input := orchestrators.RemoveMemberInput{
		MemberID:    body.MemberID,
		MemberEmail: body.MemberEmail,
		RemovedBy:   removal.UserRef{ID: sess.AccountID, Name: sess.Email},
		Reason:      body.Reason,
	}
	deps := orchestrators.RemoveMemberDeps{
		RemovalStore: stores.RemovalStore,
		EmailSender:  emailSender,
		EmailFrom:    emailFromAddress,
	}

	entry, err := orchestrators.ExecuteRemoveMember(r.Context(), timeNow(), input, deps)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ID": entry.ID})
}

// handleRestoreMember handles POST /api/removals/restore
func handleRestoreMember(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		MemberID    string
		MemberEmail string
		Reason      string
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	sess, _ := middleware.GetSessionFromContext(r.Context())
	input := orchestrators.RestoreMemberInput{
		MemberID:    body.MemberID,
		MemberEmail: body.MemberEmail,
		RestoredBy:  removal.UserRef{ID: sess.AccountID, Name: sess.Email},
		Reason:      body.Reason,
	}
	deps := orchestrators.RemoveMemberDeps{
		RemovalStore: stores.RemovalStore,
		EmailSender:  emailSender,
		EmailFrom:    emailFromAddress,
	}

	entry, err := orchestrators.ExecuteRestoreMember(r.Context(), timeNow(), input, deps)
	if err == orchestrators.ErrNothingToRestore {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ID": entry.ID})
}
