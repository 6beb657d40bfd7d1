package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-bluebook/internal/config"
	"github.com/MKhiriev/go-bluebook/internal/crypto"
	"github.com/MKhiriev/go-bluebook/internal/logger"
	"github.com/MKhiriev/go-bluebook/internal/mock"
	"github.com/MKhiriev/go-bluebook/internal/service"
	"github.com/MKhiriev/go-bluebook/internal/token"
	"github.com/MKhiriev/go-bluebook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testClientConfig() *config.ClientConfig {
	return &config.ClientConfig{
		App: config.App{
			KeyA:                crypto.DefaultKeyA,
			KeyB:                crypto.DefaultKeyB,
			ListingLabel:        config.DefaultListingLabel,
			ResourceLabelFormat: config.DefaultResourceLabelFormat,
		},
		Auth:    config.Auth{Email: "a@b.c", Password: "pw"},
		Workers: config.Workers{FetchConcurrency: 2},
	}
}

func newTestApp(t *testing.T, cfg *config.ClientConfig, stdin string) (*App, *mock.MockTransport, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	transport := mock.NewMockTransport(ctrl)

	var out bytes.Buffer
	services := service.NewClientServices(transport, cfg.App, logger.Nop())
	return NewApp(services, cfg, strings.NewReader(stdin), &out, logger.Nop()), transport, &out
}

func okResponse(data string) models.ProxyResponse {
	return models.ProxyResponse{Data: json.RawMessage(data), Status: http.StatusOK}
}

// ── Offline commands ─────────────────────────────────────────────────────────

func TestApp_Derive(t *testing.T) {
	app, _, out := newTestApp(t, testClientConfig(), "")

	require.NoError(t, app.Run(context.Background(), []string{"derive", "March", "2023", "Form", "A"}))

	var got models.ValueToken
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, token.FallbackToken, got.Token)
	assert.Equal(t, "March 2023 Form A", got.Label)
}

func TestApp_Analyze(t *testing.T) {
	app, _, out := newTestApp(t, testClientConfig(), "")

	require.NoError(t, app.Run(context.Background(), []string{"analyze", token.FallbackToken}))
	assert.Contains(t, out.String(), `"label": "March 2023 Form A"`)
}

func TestApp_Recover_FromStdin(t *testing.T) {
	app, _, out := newTestApp(t, testClientConfig(), token.FallbackToken+"\n")

	require.NoError(t, app.Run(context.Background(), []string{"recover", "-"}))

	var got models.RecoveredPlaintext
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "March 2023 Form A", got.Text)
	assert.Equal(t, "hex-aes-cbc(key-a,iv-b)", got.Hypothesis)
}

func TestApp_Hypotheses(t *testing.T) {
	app, _, out := newTestApp(t, testClientConfig(), "")

	require.NoError(t, app.Run(context.Background(), []string{"hypotheses"}))

	var got []string
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Len(t, got, 161)
}

// ── Argument errors ──────────────────────────────────────────────────────────

func TestApp_Run_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "no command", args: nil, want: ErrNoCommand},
		{name: "unknown", args: []string{"upload"}, want: ErrUnknownCommand},
		{name: "fetch without id", args: []string{"fetch"}, want: ErrMissingArgument},
		{name: "recover without blob", args: []string{"recover"}, want: ErrMissingArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, out := newTestApp(t, testClientConfig(), "")

			err := app.Run(context.Background(), tt.args)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, out.String())
		})
	}
}

func TestApp_MissingCredentials(t *testing.T) {
	cfg := testClientConfig()
	cfg.Auth = config.Auth{}
	app, _, _ := newTestApp(t, cfg, "")

	err := app.Run(context.Background(), []string{"list"})
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

// ── Online commands ──────────────────────────────────────────────────────────

func TestApp_Fetch_LogsInFetchesAndLogsOut(t *testing.T) {
	app, transport, out := newTestApp(t, testClientConfig(), "")

	gomock.InOrder(
		transport.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req models.ProxyRequest) (models.ProxyResponse, error) {
				assert.Equal(t, "/auth/login/", req.Endpoint)
				return okResponse(`{"access_token":"acc"}`), nil
			},
		),
		transport.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req models.ProxyRequest) (models.ProxyResponse, error) {
				assert.Equal(t, "/getexam/7", req.Endpoint)
				assert.Equal(t, token.FallbackToken, req.Headers["Value"])
				return okResponse(`{"questions":[]}`), nil
			},
		),
	)

	require.NoError(t, app.Run(context.Background(), []string{"fetch", "7", "March 2023 Form A"}))

	var got models.FetchResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "7", got.ResourceID)
	require.NotNil(t, got.Plaintext)
	assert.Equal(t, "plain-json", got.Plaintext.Hypothesis)
	assert.False(t, app.services.Client.IsAuthenticated())
}

func TestApp_FetchAll(t *testing.T) {
	app, transport, out := newTestApp(t, testClientConfig(), "")

	transport.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.ProxyRequest) (models.ProxyResponse, error) {
			switch {
			case req.Endpoint == "/auth/login/":
				return okResponse(`{"access_token":"acc"}`), nil
			case req.Endpoint == "/date_location_sets":
				return okResponse(`{"Math":[{"module1":"m1","module2":"m2","value":"May"}]}`), nil
			case strings.HasPrefix(req.Endpoint, "/getexam/"):
				return okResponse(`[]`), nil
			}
			t.Errorf("unexpected endpoint %s", req.Endpoint)
			return models.ProxyResponse{}, nil
		},
	).Times(4)

	require.NoError(t, app.Run(context.Background(), []string{"fetch-all"}))

	var got []models.ExamFetch
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "m1", got[0].Module)
	assert.Equal(t, "m2", got[1].Module)
}

func TestApp_List_LoginFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	apiClient := mock.NewMockAPIClient(ctrl)
	cfg := testClientConfig()

	var out bytes.Buffer
	services := &service.ClientServices{Client: apiClient}
	app := NewApp(services, cfg, strings.NewReader(""), &out, logger.Nop())

	failed := &service.RequestFailedError{StatusText: "dial tcp: connection refused"}
	gomock.InOrder(
		apiClient.EXPECT().IsAuthenticated().Return(false),
		apiClient.EXPECT().Login(gomock.Any(), "a@b.c", "pw").Return(models.Credential{}, failed),
	)

	err := app.Run(context.Background(), []string{"list"})

	assert.ErrorIs(t, err, service.ErrRequestFailed)
	assert.Empty(t, out.String())
}

func TestApp_Fetch_AlreadyAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	apiClient := mock.NewMockAPIClient(ctrl)

	var out bytes.Buffer
	services := &service.ClientServices{Client: apiClient}
	app := NewApp(services, testClientConfig(), strings.NewReader(""), &out, logger.Nop())

	gomock.InOrder(
		apiClient.EXPECT().IsAuthenticated().Return(true),
		apiClient.EXPECT().FetchResource(gomock.Any(), "9", "Form C").
			Return(models.FetchResult{ResourceID: "9", Label: "Form C"}, nil),
		apiClient.EXPECT().Logout(),
	)

	require.NoError(t, app.Run(context.Background(), []string{"fetch", "9", "Form", "C"}))

	var got models.FetchResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "Form C", got.Label)
}

func TestApp_Login_Forbidden(t *testing.T) {
	app, transport, _ := newTestApp(t, testClientConfig(), "")

	transport.EXPECT().Do(gomock.Any(), gomock.Any()).
		Return(models.ProxyResponse{Status: http.StatusUnauthorized}, nil)

	err := app.Run(context.Background(), []string{"list"})
	assert.ErrorIs(t, err, service.ErrForbidden)
}
