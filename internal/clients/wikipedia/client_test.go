package wikipedia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnmate/coordinator/internal/utils"
)

func TestCleanText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"strips html tags", "<p>Hello <b>world</b></p>", "Hello world"},
		{"strips reference markers", "Python[1] is popular[23].", "Python is popular."},
		{"collapses whitespace", "  a \n\t b  ", "a b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cleanText(tc.in))
		})
	}
}

func TestTitleVariants(t *testing.T) {
	t.Run("ampersand and qualifier variants", func(t *testing.T) {
		variants := titleVariants("Signals & Systems Fundamentals")
		assert.Equal(t, []string{
			"Signals & Systems Fundamentals",
			"Signals and Systems Fundamentals",
			"Signals & Systems",
			"Signals",
		}, variants)
	})

	t.Run("plain titles yield a single variant", func(t *testing.T) {
		assert.Equal(t, []string{"Fluid Mechanics"}, titleVariants("Fluid Mechanics"))
	})
}

func TestSubjectPageTitle(t *testing.T) {
	assert.Equal(t, "Data_structure", SubjectPageTitle("Data Structures & Algorithms"))
	assert.Equal(t, "Machine_learning", SubjectPageTitle("Machine Learning Fundamentals"))
	assert.Equal(t, "Python_Loop_Fundamentals", SubjectPageTitle("Python Loop Fundamentals"))
	assert.Equal(t, "CICD_Pipelines", SubjectPageTitle("CI/CD Pipelines"))
}

func TestFetchSubjectData(t *testing.T) {
	logger := utils.NewDevelopmentLogger()

	t.Run("prefers sectioned full page", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/sections/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"displaytitle": "Python (programming language)",
				"lead": {"text": "<p>Python is a high-level language.</p>"},
				"remaining": {"sections": [
					{"line": "History", "text": "<p>Python was conceived in the late 1980s by Guido van Rossum at CWI in the Netherlands.</p>"},
					{"line": "Stub", "text": "tiny"}
				]}
			}`))
		})
		mux.HandleFunc("/summary/", func(w http.ResponseWriter, r *http.Request) {
			t.Error("summary endpoint should not be hit when sections succeed")
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		client := NewClientWithBaseURLs(logger, server.URL+"/summary", server.URL+"/sections")

		page, err := client.FetchSubjectData(context.Background(), "Python")
		require.NoError(t, err)
		assert.Equal(t, "Python (programming language)", page.Title)
		assert.Equal(t, "Python is a high-level language.", page.Extract)
		require.Len(t, page.Sections, 1, "sections below the length floor are dropped")
		assert.Equal(t, "History", page.Sections[0].Title)
	})

	t.Run("falls back to summary", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/sections/", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})
		mux.HandleFunc("/summary/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"title": "Recursion", "extract": "Recursion occurs when a thing is defined in terms of itself."}`))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		client := NewClientWithBaseURLs(logger, server.URL+"/summary", server.URL+"/sections")

		page, err := client.FetchSubjectData(context.Background(), "Recursion")
		require.NoError(t, err)
		assert.Equal(t, "Recursion", page.Title)
		assert.NotEmpty(t, page.Extract)
		assert.Empty(t, page.Sections)
	})

	t.Run("no variant found", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		client := NewClientWithBaseURLs(logger, server.URL+"/summary", server.URL+"/sections")

		_, err := client.FetchSubjectData(context.Background(), "Nothing Here")
		assert.ErrorIs(t, err, ErrPageNotFound)
	})

	t.Run("sends identifying user agent", func(t *testing.T) {
		var gotAgent string
		mux := http.NewServeMux()
		mux.HandleFunc("/sections/", func(w http.ResponseWriter, r *http.Request) {
			gotAgent = r.Header.Get("User-Agent")
			http.NotFound(w, r)
		})
		mux.HandleFunc("/summary/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"title": "X", "extract": "y"}`))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		client := NewClientWithBaseURLs(logger, server.URL+"/summary", server.URL+"/sections")

		_, err := client.FetchSubjectData(context.Background(), "X")
		require.NoError(t, err)
		assert.Equal(t, "LearnMate-Quiz-Generator/1.0", gotAgent)
	})
}
