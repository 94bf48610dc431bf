package serve

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/jadwal/pkg/app"
	"tableflip.dev/jadwal/pkg/record"
	"tableflip.dev/jadwal/pkg/store"
)

func fixture() *store.Store {
	return &store.Store{
		Teachers: []record.Teacher{
			{ID: "T1", Name: "Siti Aminah", Color: "#ff0000"},
			{ID: "T2", Name: "Budi Santoso"},
		},
		Courses:    []record.Course{{ID: "C1", Name: "Math"}},
		ClassRooms: []record.ClassRoom{{ID: "R1", Name: "Room 101"}, {ID: "R2", Name: "Lab"}},
		Schedules:  []record.Schedule{{ID: "S1", SubjectID: "C1", TeacherIDs: record.ParseIDList("T1"), ClassRoomID: "R1"}},
		Periods:    []record.Period{{Name: "P1", StartTime: "07:00", EndTime: "07:45"}},
		Cards:      []record.Card{{LessonID: "S1", ClassroomID: "R1", Period: "P1", Days: record.Monday}},
	}
}

func newServer(st *store.Store) *Server {
	return &Server{
		Service:   &app.Service{Catalog: store.Static(st)},
		AccessLog: io.Discard,
	}
}

func get(t *testing.T, s *Server, target string) (int, map[string]any, *http.Response) {
	t.Helper()
	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body, resp
}

func TestHealth(t *testing.T) {
	code, body, resp := get(t, newServer(fixture()), "/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["loaded"])
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	code, body, _ = get(t, newServer(nil), "/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["loaded"])
}

func TestRequestIDEchoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := newServer(fixture()).App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
}

func TestTeachers(t *testing.T) {
	code, body, _ := get(t, newServer(fixture()), "/api/teachers?search=budi&page=1&per_page=10")
	require.Equal(t, http.StatusOK, code)

	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "T2", items[0].(map[string]any)["id"])

	meta := body["meta"].(map[string]any)
	assert.EqualValues(t, 1, meta["total"])
	assert.EqualValues(t, 10, meta["per_page"])
}

func TestTeacherByID(t *testing.T) {
	code, body, _ := get(t, newServer(fixture()), "/api/teachers/T1")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Siti Aminah", body["name"])

	code, body, _ = get(t, newServer(fixture()), "/api/teachers/T9")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, body["error"], "T9")
}

func TestBadQueries(t *testing.T) {
	s := newServer(fixture())
	for _, target := range []string{
		"/api/teachers?page=0",
		"/api/teachers?page=abc",
		"/api/classrooms?per_page=7",
		"/api/timetable?mode=room",
		"/api/timetable?id=T1",
		"/api/timetable/cell?day=sun&period=P1",
		"/api/timetable/cell?period=P1",
		"/api/options",
	} {
		code, body, _ := get(t, s, target)
		assert.Equal(t, http.StatusBadRequest, code, target)
		assert.NotEmpty(t, body["error"], target)
	}
}

func TestNotLoaded(t *testing.T) {
	s := newServer(nil)
	for _, target := range []string{
		"/api/teachers",
		"/api/subjects",
		"/api/timetable",
		"/api/timetable/cell?day=mon&period=P1",
		"/api/options?mode=teacher",
		"/api/summary",
	} {
		code, body, _ := get(t, s, target)
		assert.Equal(t, http.StatusServiceUnavailable, code, target)
		assert.True(t, strings.Contains(body["error"].(string), "not loaded"), target)
	}
}

func TestTimetable(t *testing.T) {
	s := newServer(fixture())

	code, body, _ := get(t, s, "/api/timetable?mode=teacher&id=T1")
	require.Equal(t, http.StatusOK, code)
	rows := body["rows"].([]any)
	require.Len(t, rows, 1)
	slots := rows[0].(map[string]any)["slots"].([]any)
	require.Len(t, slots, 5)
	cell := slots[0].(map[string]any)["cell"].(map[string]any)
	assert.Equal(t, "Math", cell["subjectLabel"])
	assert.Equal(t, "#ff000033", cell["tintColor"])
	assert.Nil(t, slots[1].(map[string]any)["cell"])

	code, body, _ = get(t, s, "/api/timetable?mode=teacher&id=T2")
	require.Equal(t, http.StatusOK, code)
	slots = body["rows"].([]any)[0].(map[string]any)["slots"].([]any)
	assert.Nil(t, slots[0].(map[string]any)["cell"])
}

func TestCell(t *testing.T) {
	s := newServer(fixture())

	code, body, _ := get(t, s, "/api/timetable/cell?day=10000&period=P1&mode=classroom&id=R1")
	require.Equal(t, http.StatusOK, code)
	cell := body["cell"].(map[string]any)
	assert.Equal(t, "Room 101", cell["roomLabel"])
	assert.Equal(t, "Siti Aminah", cell["teacherLabel"])

	code, body, _ = get(t, s, "/api/timetable/cell?day=mon&period=P1&mode=classroom&id=R2")
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, body["cell"])

	code, _, _ = get(t, s, "/api/timetable/cell?day=mon&period=P9")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestOptions(t *testing.T) {
	code, body, _ := get(t, newServer(fixture()), "/api/options?mode=class&search=lab")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "classroom", body["mode"])
	assert.Equal(t, "Select a class...", body["placeholder"])
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "R2", items[0].(map[string]any)["id"])
}

func TestSummary(t *testing.T) {
	code, body, _ := get(t, newServer(fixture()), "/api/summary")
	require.Equal(t, http.StatusOK, code)
	counts := body["counts"].(map[string]any)
	assert.EqualValues(t, 2, counts["teachers"])
	assert.EqualValues(t, 1, body["placed"])
}

func TestRateLimit(t *testing.T) {
	s := newServer(fixture())
	s.RateLimit = 2
	a := s.App()
	var last int
	for i := 0; i < 3; i++ {
		resp, err := a.Test(httptest.NewRequest(http.MethodGet, "/api/subjects", nil), -1)
		require.NoError(t, err)
		last = resp.StatusCode
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}
