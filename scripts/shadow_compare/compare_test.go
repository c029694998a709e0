package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargetsDefaults(t *testing.T) {
	targets, err := parseTargets(strings.NewReader(`{"targets":[{"legacyPath":"alumnos"},{"method":"post","legacyPath":"/alumnos/1/email","goPath":"/students/1/notify"}]}`), "inline")
	require.NoError(t, err)
	require.Len(t, targets, 2)

	assert.Equal(t, http.MethodGet, targets[0].Method)
	assert.Equal(t, "/alumnos", targets[0].LegacyPath)
	assert.Equal(t, "/alumnos", targets[0].GoPath)
	assert.Equal(t, http.MethodPost, targets[1].Method)
	assert.Equal(t, "/students/1/notify", targets[1].GoPath)

	_, err = parseTargets(strings.NewReader(`{"targets":[]}`), "inline")
	assert.Error(t, err)
}

func TestBodiesEqual(t *testing.T) {
	assert.True(t, bodiesEqual([]byte(`{"a":1,"b":[1,2]}`), []byte(`{"b":[1.0,2],"a":1}`), nil))
	assert.False(t, bodiesEqual([]byte(`{"a":1}`), []byte(`{"a":2}`), nil))
	assert.True(t, bodiesEqual(
		[]byte(`[{"id":1,"nombres":"Ana","fotoPerfilUrl":"x"}]`),
		[]byte(`[{"id":7,"nombres":"Ana","fotoPerfilUrl":"y"}]`),
		[]string{"id", "fotoPerfilUrl"},
	))
	assert.True(t, bodiesEqual([]byte("plain\n"), []byte("plain"), nil))
	assert.False(t, bodiesEqual([]byte("plain"), []byte("other"), []string{"id"}))
}

func TestCompareAgainstServers(t *testing.T) {
	legacy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/alumnos":
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `[{"id":3,"nombres":"Ana"}]`)
		case "/alumnos/9":
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"error":"Alumno no encontrado"}`)
		default:
			body, _ := io.ReadAll(r.Body)
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write(body)
		}
	}))
	defer legacy.Close()

	var received map[string]interface{}
	goSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/alumnos":
			_, _ = io.WriteString(w, `[{"id":1,"nombres":"Ana"}]`)
		case "/students/9":
			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, `{}`)
		default:
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"promedio":150}`)
		}
	}))
	defer goSrv.Close()

	cmp := newComparer(goSrv.URL, legacy.URL+"/", time.Second)

	list := cmp.compare(target{Method: http.MethodGet, LegacyPath: "/alumnos", GoPath: "/alumnos", Ignore: []string{"id"}, Critical: true})
	require.NoError(t, list.Error)
	assert.True(t, list.StatusMatch)
	assert.True(t, list.BodyMatch)

	missing := cmp.compare(target{Method: http.MethodGet, LegacyPath: "/alumnos/9", GoPath: "/students/9", Critical: true})
	require.NoError(t, missing.Error)
	assert.Equal(t, http.StatusNotFound, missing.LegacyStatus)
	assert.Equal(t, http.StatusOK, missing.GoStatus)
	assert.False(t, missing.StatusMatch)

	create := cmp.compare(target{Method: http.MethodPost, LegacyPath: "/x", GoPath: "/x", Body: json.RawMessage(`{"promedio":150}`)})
	require.NoError(t, create.Error)
	assert.True(t, create.StatusMatch)
	assert.True(t, create.BodyMatch)
	assert.Equal(t, float64(150), received["promedio"])

	breaking, optional := tally([]comparison{list, missing, create})
	assert.Equal(t, 1, breaking)
	assert.Equal(t, 0, optional)

	var report bytes.Buffer
	printReport(&report, []comparison{list, missing})
	assert.Contains(t, report.String(), "[OK] GET /alumnos -> /alumnos")
	assert.Contains(t, report.String(), "[DIFF] GET /alumnos/9 -> /students/9")
}

func TestCompareReportsUnreachableService(t *testing.T) {
	legacy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer legacy.Close()

	cmp := newComparer("http://127.0.0.1:1", legacy.URL, 200*time.Millisecond)
	res := cmp.compare(target{Method: http.MethodGet, LegacyPath: "/alumnos", GoPath: "/alumnos", Critical: true})
	require.Error(t, res.Error)
	assert.Contains(t, res.Error.Error(), "go request failed")

	breaking, _ := tally([]comparison{res})
	assert.Equal(t, 1, breaking)
}
