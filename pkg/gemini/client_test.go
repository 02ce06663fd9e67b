package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	pkgerrors "github.com/aryangupta0810/ecart-backend/pkg/errors"
)

func TestClientGenerateTextRequest(t *testing.T) {
	const expectedURL = "http://gemini.test/v1beta/models/gemini-pro:generateContent"
	respBody := `{"candidates":[{"content":{"parts":[{"text":"Hello "},{"text":"shopper"}]}}]}`

	var capturedURL string
	var capturedHeaders http.Header

	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		capturedURL = req.URL.String()
		capturedHeaders = req.Header.Clone()

		bodyBytes, err := io.ReadAll(req.Body)
		if err != nil {
			t.Fatalf("read request body: %v", err)
		}
		var payload generateRequest
		if err := json.Unmarshal(bodyBytes, &payload); err != nil {
			t.Fatalf("unmarshal request body: %v", err)
		}
		if len(payload.Contents) != 1 || len(payload.Contents[0].Parts) != 1 {
			t.Fatalf("unexpected payload %+v", payload)
		}
		if payload.Contents[0].Parts[0].Text != "what should I wear" {
			t.Fatalf("unexpected prompt %q", payload.Contents[0].Parts[0].Text)
		}

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(respBody)),
			Header:     http.Header{},
		}, nil
	})

	httpClient := &http.Client{Transport: rt}
	client, err := NewClient("test-key", WithBaseURL("http://gemini.test/v1beta"), WithHTTPClient(httpClient))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	text, err := client.GenerateText(context.Background(), "what should I wear")
	if err != nil {
		t.Fatalf("generate text: %v", err)
	}
	if capturedURL != expectedURL {
		t.Fatalf("unexpected URL %q", capturedURL)
	}
	if capturedHeaders.Get("X-Goog-Api-Key") != "test-key" {
		t.Fatalf("api key header missing")
	}
	if text != "Hello shopper" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestClientGenerateTextNonOKStatus(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(strings.NewReader(`{"error":"quota"}`)),
			Header:     http.Header{},
		}, nil
	})

	client, err := NewClient("test-key", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.GenerateText(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestClientGenerateTextEmptyCandidates(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"candidates":[]}`)),
			Header:     http.Header{},
		}, nil
	})

	client, err := NewClient("test-key", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.GenerateText(context.Background(), "hi"); err == nil {
		t.Fatal("expected error for empty candidates")
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient("  "); err == nil {
		t.Fatal("expected error for blank api key")
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
