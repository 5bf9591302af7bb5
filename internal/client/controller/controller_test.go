package controller

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recordsync/internal/client/client"
	"github.com/dmitrijs2005/recordsync/internal/client/loop"
	"github.com/dmitrijs2005/recordsync/internal/client/metrics"
	"github.com/dmitrijs2005/recordsync/internal/client/models"
	"github.com/dmitrijs2005/recordsync/internal/client/ui"
	"github.com/dmitrijs2005/recordsync/internal/common"
	"github.com/dmitrijs2005/recordsync/internal/logging"
	"github.com/dmitrijs2005/recordsync/internal/server/httpapi"
	"github.com/dmitrijs2005/recordsync/internal/server/records"
)

type fakeAPI struct {
	mu sync.Mutex

	records []models.Record
	listErr error
	addResp *models.AddResponse
	addErr  error

	listCalls int
	added     []string
	listRIDs  []string
}

func (f *fakeAPI) ListRecords(ctx context.Context) ([]models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if rid, ok := client.RequestIDFrom(ctx); ok {
		f.listRIDs = append(f.listRIDs, rid)
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Record, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeAPI) AddRecord(_ context.Context, content string) (*models.AddResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, content)
	if f.addErr != nil {
		return nil, f.addErr
	}
	if f.addResp != nil {
		return f.addResp, nil
	}
	return &models.AddResponse{Message: "Item added successfully!"}, nil
}

type fixture struct {
	api   *fakeAPI
	view  *ui.ListContainer
	input *ui.Field
	loop  *loop.Loop
	ctrl  *Controller
	reg   *prometheus.Registry
	logs  *bytes.Buffer
}

func newFixture(t *testing.T, api client.Client, opts ...Option) *fixture {
	t.Helper()

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	logs := &bytes.Buffer{}
	logger, err := logging.New(logs, "debug", "json")
	require.NoError(t, err)

	f := &fixture{
		view:  ui.NewListContainer(),
		input: ui.NewField(""),
		loop:  loop.New(),
		reg:   reg,
		logs:  logs,
	}
	if fa, ok := api.(*fakeAPI); ok {
		f.api = fa
	}
	f.ctrl = New(api, f.view, f.input, f.loop, logger, append([]Option{WithMetrics(m)}, opts...)...)
	return f
}

func (f *fixture) run(t *testing.T, fn func()) {
	t.Helper()
	f.loop.Post(fn)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, f.loop.Drain(ctx))
}

func (f *fixture) count(t *testing.T, op metrics.Op, res metrics.Result) float64 {
	t.Helper()
	families, err := f.reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != "recordsync_client_operations_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["op"] == string(op) && labels["result"] == string(res) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		records []models.Record
		want    []string
	}{
		{
			name: "one line per record in order",
			records: []models.Record{
				{ID: models.IntID(2), Content: "second"},
				{ID: models.StringID("a1"), Content: "first"},
				{ID: models.IntID(7), Content: "with, comma"},
			},
			want: []string{"ID: 2, Data: second", "ID: a1, Data: first", "ID: 7, Data: with, comma"},
		},
		{name: "empty slice", records: []models.Record{}, want: []string{Placeholder}},
		{name: "nil slice", records: nil, want: []string{Placeholder}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, &fakeAPI{})
			f.view.Append("stale line")

			f.ctrl.Render(tt.records)
			assert.Equal(t, tt.want, f.view.Lines())
		})
	}
}

func TestRender_Idempotent(t *testing.T) {
	f := newFixture(t, &fakeAPI{})
	records := []models.Record{{ID: models.IntID(1), Content: "foo"}}

	f.ctrl.Render(records)
	once := f.view.Lines()
	f.ctrl.Render(records)

	assert.Equal(t, once, f.view.Lines())
}

func TestLoad_RendersRecords(t *testing.T) {
	api := &fakeAPI{records: []models.Record{
		{ID: models.IntID(1), Content: "foo"},
		{ID: models.IntID(2), Content: "bar"},
	}}
	f := newFixture(t, api)

	f.run(t, func() { f.ctrl.Load(context.Background()) })

	assert.Equal(t, []string{"ID: 1, Data: foo", "ID: 2, Data: bar"}, f.view.Lines())
	assert.Equal(t, 1, api.listCalls)
	require.Len(t, api.listRIDs, 1)
	assert.NotEmpty(t, api.listRIDs[0])
	assert.Equal(t, 1.0, f.count(t, metrics.OpLoad, metrics.ResultSuccess))
}

func TestLoad_EmptyShowsPlaceholder(t *testing.T) {
	f := newFixture(t, &fakeAPI{})

	f.run(t, func() { f.ctrl.Load(context.Background()) })

	assert.Equal(t, []string{Placeholder}, f.view.Lines())
}

func TestLoad_FailureLeavesViewUnchanged(t *testing.T) {
	api := &fakeAPI{listErr: &client.StatusError{Code: http.StatusInternalServerError, Status: "500 Internal Server Error"}}
	f := newFixture(t, api)
	f.view.Append("ID: 1, Data: kept")

	assert.NotPanics(t, func() {
		f.run(t, func() { f.ctrl.Load(context.Background()) })
	})

	assert.Equal(t, []string{"ID: 1, Data: kept"}, f.view.Lines())
	assert.Equal(t, 1.0, f.count(t, metrics.OpLoad, metrics.ResultFailure))
	assert.Contains(t, f.logs.String(), `"msg":"load failed"`)
	assert.Contains(t, f.logs.String(), common.ErrReadFailure.Error())
}

func TestLoad_ControllerUsableAfterFailure(t *testing.T) {
	api := &fakeAPI{listErr: client.ErrUnavailable}
	f := newFixture(t, api)

	f.run(t, func() { f.ctrl.Load(context.Background()) })
	assert.Empty(t, f.view.Lines())

	api.mu.Lock()
	api.listErr = nil
	api.records = []models.Record{{ID: models.IntID(5), Content: "back"}}
	api.mu.Unlock()

	f.run(t, func() { f.ctrl.Load(context.Background()) })
	assert.Equal(t, []string{"ID: 5, Data: back"}, f.view.Lines())
}

func TestSubmit_BlankInputDoesNothing(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n "} {
		api := &fakeAPI{}
		f := newFixture(t, api)
		f.input.SetValue(in)

		f.run(t, func() { f.ctrl.Submit(context.Background()) })

		assert.Empty(t, api.added)
		assert.Zero(t, api.listCalls)
		assert.Equal(t, in, f.input.Value())
		assert.Equal(t, 1.0, f.count(t, metrics.OpSubmit, metrics.ResultSkipped))
	}
}

func TestSubmit_SuccessClearsFieldAndReloadsOnce(t *testing.T) {
	api := &fakeAPI{records: []models.Record{{ID: models.IntID(1), Content: "hello"}}}
	f := newFixture(t, api)
	f.input.SetValue("  hello ")

	f.run(t, func() { f.ctrl.Submit(context.Background()) })

	assert.Equal(t, []string{"hello"}, api.added)
	assert.Equal(t, "", f.input.Value())
	assert.Equal(t, 1, api.listCalls)
	assert.Equal(t, []string{"ID: 1, Data: hello"}, f.view.Lines())
	assert.Equal(t, 1.0, f.count(t, metrics.OpSubmit, metrics.ResultSuccess))
	assert.Contains(t, f.logs.String(), "Item added successfully!")
}

func TestSubmit_FailureKeepsInput(t *testing.T) {
	api := &fakeAPI{addErr: errors.New("connection reset")}
	f := newFixture(t, api)
	f.view.Append("ID: 1, Data: old")
	f.input.SetValue("hello")

	f.run(t, func() { f.ctrl.Submit(context.Background()) })

	assert.Equal(t, "hello", f.input.Value())
	assert.Zero(t, api.listCalls)
	assert.Equal(t, []string{"ID: 1, Data: old"}, f.view.Lines())
	assert.Equal(t, 1.0, f.count(t, metrics.OpSubmit, metrics.ResultFailure))
	assert.Contains(t, f.logs.String(), common.ErrWriteFailure.Error())
}

func TestSubmit_DoubleSubmitIsNotGuarded(t *testing.T) {
	api := &fakeAPI{}
	f := newFixture(t, api)
	f.input.SetValue("twice")

	f.run(t, func() {
		f.ctrl.Submit(context.Background())
		f.ctrl.Submit(context.Background())
	})

	assert.Equal(t, []string{"twice", "twice"}, api.added)
	assert.Equal(t, 2, api.listCalls)
}

func TestEndToEnd_HTTPBackend(t *testing.T) {
	var mu sync.Mutex
	var posted []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == common.RecordsPath:
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `[{"id":1,"content":"foo"},{"id":2,"content":"bar"}]`)
		case r.Method == http.MethodPost && r.URL.Path == common.AddRecordPath:
			b, _ := io.ReadAll(r.Body)
			mu.Lock()
			posted = append(posted, string(b))
			mu.Unlock()
			_, _ = io.WriteString(w, `{"message":"Item added successfully!"}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	api, err := client.NewHTTPClient(ts.URL, time.Second)
	require.NoError(t, err)
	f := newFixture(t, api)

	f.run(t, func() { f.ctrl.Load(context.Background()) })
	assert.Equal(t, []string{"ID: 1, Data: foo", "ID: 2, Data: bar"}, f.view.Lines())

	f.input.SetValue("hello")
	f.run(t, func() { f.ctrl.Submit(context.Background()) })

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, posted, 1)
	assert.JSONEq(t, `{"content":"hello"}`, posted[0])
	assert.Empty(t, f.input.Value())
}

func TestEndToEnd_ServerErrorIsSilent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	api, err := client.NewHTTPClient(ts.URL, time.Second)
	require.NoError(t, err)
	f := newFixture(t, api)
	f.ctrl.Render([]models.Record{{ID: models.IntID(9), Content: "prior"}})

	f.run(t, func() { f.ctrl.Load(context.Background()) })
	assert.Equal(t, []string{"ID: 9, Data: prior"}, f.view.Lines())

	f.input.SetValue("keep me")
	f.run(t, func() { f.ctrl.Submit(context.Background()) })
	assert.Equal(t, "keep me", f.input.Value())
}

func TestEndToEnd_DevelopmentBackend(t *testing.T) {
	rs := records.NewService(records.NewInMemoryRepository())
	require.NoError(t, rs.Seed(context.Background(), []string{"foo", "bar"}))

	reg := prometheus.NewRegistry()
	srv, err := httpapi.NewServer(":0", logging.Discard(), rs, reg, reg)
	require.NoError(t, err)

	ts := httptest.NewServer(adaptor.FiberApp(srv.App()))
	defer ts.Close()

	api, err := client.NewHTTPClient(ts.URL, time.Second)
	require.NoError(t, err)
	f := newFixture(t, api)

	f.run(t, func() { f.ctrl.Load(context.Background()) })
	assert.Equal(t, []string{"ID: 1, Data: foo", "ID: 2, Data: bar"}, f.view.Lines())

	f.input.SetValue("  baz  ")
	f.run(t, func() { f.ctrl.Submit(context.Background()) })

	assert.Empty(t, f.input.Value())
	assert.Equal(t, []string{"ID: 1, Data: foo", "ID: 2, Data: bar", "ID: 3, Data: baz"}, f.view.Lines())
}
