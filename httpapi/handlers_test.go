package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/config"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/presets"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	reg, err := presets.New()
	require.NoError(t, err)
	return NewServer(zap.NewNop(), reg, config.Config{
		MaxDOF:         config.DefaultMaxDOF,
		MaxIterations:  config.DefaultMaxIterations,
		MaxSamples:     config.DefaultMaxSamples,
		MaxWaypoints:   config.DefaultMaxWaypoints,
		RequestTimeout: config.DefaultRequestTimeout,
	}, "test")
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	router := testServer(t).Router()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestChainsEndpointListsPresets(t *testing.T) {
	router := testServer(t).Router()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/kinematics/chains", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var chains []ChainPresetDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chains))
	assert.Len(t, chains, 5)
}

// TestSolveIKEndpoint exercises an implicit-chain, joint-count-only request.
func TestSolveIKEndpoint(t *testing.T) {
	router := testServer(t).Router()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/kinematics/solve-ik", SolveIKRequest{
		JointCount:     7,
		TargetPosition: [3]float64{0.5, 0.3, 0.2},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SolveIKResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.JointAngles, 7)
	assert.NotEmpty(t, resp.SolutionID)
}

func TestSolveIKEndpointRejectsMissingChain(t *testing.T) {
	router := testServer(t).Router()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/kinematics/solve-ik", SolveIKRequest{
		TargetPosition: [3]float64{0.1, 0, 0},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var env errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.NotEmpty(t, env.Error)
}

// TestSolveFKEndpoint exercises implicit-chain-mode FK over joint angles and
// link lengths with no explicit chain.
func TestSolveFKEndpoint(t *testing.T) {
	router := testServer(t).Router()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/kinematics/solve-fk", SolveFKRequest{
		JointAngles: []float64{0, 0, 0, 0, 0},
		LinkLengths: []float64{0.2, 0.2, 0.2, 0.2, 0.2},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SolveFKResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 1.0, resp.EndEffectorPosition[0], 1e-9)
}

func TestOptimizeTrajectoryEndpoint(t *testing.T) {
	router := testServer(t).Router()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/kinematics/optimize-trajectory", OptimizeTrajectoryRequest{
		Waypoints:   [][3]float64{{0, 0, 0}, {0.1, 0, 0}},
		MaxVelocity: 1.0,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp OptimizeTrajectoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Greater(t, resp.TotalTime, 0.0)
}

func TestStatsEndpointIncrementsAcrossCalls(t *testing.T) {
	s := testServer(t)
	router := s.Router()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)
	router.ServeHTTP(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	statsReq := httptest.NewRequest(http.MethodGet, "/api/v1/kinematics/stats", nil)
	router.ServeHTTP(rec, statsReq)

	var snap struct {
		RequestsTotal uint64 `json:"requests_total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.GreaterOrEqual(t, snap.RequestsTotal, uint64(2))
}
