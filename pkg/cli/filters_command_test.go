//go:build !integration

package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/southerncoder/jirasweep/pkg/jira"
)

// filterServer is a minimal in-memory Jira filter API.
type filterServer struct {
	mu      sync.Mutex
	deleted []string
}

func (s *filterServer) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/rest/api/2/filter/search" && r.Method == http.MethodGet:
			w.Write([]byte(`{"values":[
				{"id":"10001","name":"Sprint Cleanup","owner":{"displayName":"Ada"}},
				{"id":"10002","name":"Sprint Backlog","owner":{"displayName":"Ada"}},
				{"id":"10003","name":"Sprint Leftovers","owner":{"displayName":"Ada"}}
			]}`))
		case r.URL.Path == "/rest/api/2/filter/favourite" && r.Method == http.MethodGet:
			w.Write([]byte(`[{"id":"10001","name":"Sprint Cleanup"}]`))
		case r.Method == http.MethodGet:
			// Filter details by ID.
			id := r.URL.Path[len("/rest/api/2/filter/"):]
			w.Write([]byte(`{"id":"` + id + `","name":"Filter ` + id + `","jql":"project = TEST"}`))
		case r.Method == http.MethodDelete:
			s.mu.Lock()
			s.deleted = append(s.deleted, r.URL.Path)
			s.mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func newFilterTestEnv(t *testing.T) (*filterServer, *jira.Client) {
	t.Helper()
	fs := &filterServer{}
	server := httptest.NewServer(fs.handler(t))
	t.Cleanup(server.Close)
	return fs, jira.New(server.URL, "u", "t")
}

func TestRunFiltersSearchBatchDelete(t *testing.T) {
	fs, client := newFilterTestEnv(t)

	err := RunFiltersSearch(context.Background(), client, "sprint", FiltersConfig{
		Selection: "1,3",
		Force:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"/rest/api/2/filter/10001",
		"/rest/api/2/filter/10003",
	}, fs.deleted, "only selected filters deleted, in list order")
}

func TestRunFiltersSearchNoSelection(t *testing.T) {
	fs, client := newFilterTestEnv(t)

	// Without a selection and without a TTY, the listing is the result.
	err := RunFiltersSearch(context.Background(), client, "sprint", FiltersConfig{})

	require.NoError(t, err)
	assert.Empty(t, fs.deleted)
}

func TestRunFiltersSearchEmptyName(t *testing.T) {
	_, client := newFilterTestEnv(t)

	err := RunFiltersSearch(context.Background(), client, "  ", FiltersConfig{})
	require.Error(t, err)
}

func TestRunFiltersSearchNoMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"values":[]}`))
	}))
	t.Cleanup(server.Close)
	client := jira.New(server.URL, "u", "t")

	err := RunFiltersSearch(context.Background(), client, "nothing", FiltersConfig{Selection: "1"})
	require.NoError(t, err, "no matches is not an error")
}

func TestRunFiltersListSingleDelete(t *testing.T) {
	fs, client := newFilterTestEnv(t)

	err := RunFiltersList(context.Background(), client, FiltersConfig{
		Selection: "1",
		Force:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"/rest/api/2/filter/10001"}, fs.deleted)
}

func TestRunFiltersDeleteByID(t *testing.T) {
	fs, client := newFilterTestEnv(t)

	err := RunFiltersDelete(context.Background(), client, []string{"10042", "10055", "10042"}, true)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"/rest/api/2/filter/10042",
		"/rest/api/2/filter/10055",
	}, fs.deleted, "repeated IDs deleted once")
}

func TestRunFiltersDeleteUnknownID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errorMessages":["filter does not exist"]}`))
	}))
	t.Cleanup(server.Close)
	client := jira.New(server.URL, "u", "t")

	err := RunFiltersDelete(context.Background(), client, []string{"99999"}, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "99999")
}
