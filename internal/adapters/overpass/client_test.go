package overpass_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gimmisn/internal/adapters/overpass"
	"go.trai.ch/gimmisn/internal/core/domain"
)

const baseURL = "https://overpass.example.org"

func newClient(t *testing.T) (*overpass.Client, *httpmock.MockTransport) {
	t.Helper()
	transport := httpmock.NewMockTransport()
	client := resty.New().SetBaseURL(baseURL).SetTransport(transport)
	return overpass.NewWithClient(client), transport
}

func TestExecute(t *testing.T) {
	client, transport := newClient(t)

	var gotBody string
	transport.RegisterResponder(http.MethodPost, baseURL+"/api/interpreter",
		func(req *http.Request) (*http.Response, error) {
			body, err := io.ReadAll(req.Body)
			if err != nil {
				return nil, err
			}
			gotBody = string(body)
			return httpmock.NewStringResponse(http.StatusOK, "@id\tname\n1\tTest street\n"), nil
		})

	data, err := client.Execute(context.Background(), "[out:csv(::id, name)];")
	require.NoError(t, err)
	assert.Equal(t, "@id\tname\n1\tTest street\n", string(data))
	assert.Equal(t, "[out:csv(::id, name)];", gotBody)
}

func TestExecute_HTTPError(t *testing.T) {
	client, transport := newClient(t)
	transport.RegisterResponder(http.MethodPost, baseURL+"/api/interpreter",
		httpmock.NewStringResponder(http.StatusTooManyRequests, "rate limited"))

	_, err := client.Execute(context.Background(), "q")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrQueryFailed.Error())
}

func TestExecute_TransportError(t *testing.T) {
	client, transport := newClient(t)
	transport.RegisterResponder(http.MethodPost, baseURL+"/api/interpreter",
		httpmock.NewErrorResponder(io.ErrUnexpectedEOF))

	_, err := client.Execute(context.Background(), "q")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrQueryFailed.Error())
}

func TestSecondsUntilAllowed(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   int
	}{
		{
			name: "slot available now",
			status: "Connected as: 1234\nCurrent time: 2020-05-10T21:29:55Z\nRate limit: 2\n" +
				"2 slots available now.\nCurrently running queries (pid, space limit, time limit, start time):\n",
			want: 0,
		},
		{
			name: "wait for slot",
			status: "Connected as: 1234\nRate limit: 2\n" +
				"Slot available after: 2020-05-10T21:30:07Z, in 12 seconds.\n" +
				"Slot available after: 2020-05-10T21:31:00Z, in 65 seconds.\n",
			want: 12,
		},
		{
			name:   "one free slot",
			status: "Rate limit: 2\n1 slots available now.\nSlot available after: 2020-05-10T21:30:07Z, in 12 seconds.\n",
			want:   0,
		},
		{
			name:   "no information",
			status: "Connected as: 1234\n",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, transport := newClient(t)
			transport.RegisterResponder(http.MethodGet, baseURL+"/api/status",
				httpmock.NewStringResponder(http.StatusOK, tt.status))

			got, err := client.SecondsUntilAllowed(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSecondsUntilAllowed_HTTPError(t *testing.T) {
	client, transport := newClient(t)
	transport.RegisterResponder(http.MethodGet, baseURL+"/api/status",
		httpmock.NewStringResponder(http.StatusBadGateway, ""))

	_, err := client.SecondsUntilAllowed(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRateLimitStatusFailed.Error())
}

func TestParseStatus_Malformed(t *testing.T) {
	_, err := overpass.ParseStatus("Slot available after: soon, in many seconds.\n")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRateLimitStatusFailed.Error())
}
