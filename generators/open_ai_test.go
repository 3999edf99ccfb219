package generators

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/rlm/configs"
	"github.com/reusee/rlm/modes"
)

func TestOpenAIComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Error(err)
		}
		if req.Model != "test-model" {
			t.Errorf("got %v", req.Model)
		}
		if !req.Stream {
			t.Error("not streaming")
		}
		if len(req.Messages) != 2 {
			t.Errorf("got %+v", req.Messages)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("got %v", auth)
		}
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"role\":\"assistant\",\"content\":\"Final \"}}]}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"Answer: 42\"},\"finish_reason\":\"stop\"}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	loader := configs.NewLoader(nil, "")
	dscope.New(
		modes.ForTest(t),
		&loader,
		new(Module),
	).Call(func(
		newOpenAI NewOpenAI,
	) {
		gen := newOpenAI(GeneratorArgs{
			BaseURL: server.URL,
			Model:   "test-model",
		}, "test-key")

		reply, err := gen.Complete(t.Context(), []Message{
			{Role: RoleSystem, Text: "sys"},
			{Role: RoleUser, Text: "hi"},
		})
		if err != nil {
			t.Fatal(err)
		}
		if reply != "Final Answer: 42" {
			t.Fatalf("got %q", reply)
		}
	})
}

func TestOpenAIBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"bad key","type":"invalid_request_error"}}`)
	}))
	defer server.Close()

	loader := configs.NewLoader(nil, "")
	dscope.New(
		modes.ForTest(t),
		&loader,
		new(Module),
	).Call(func(
		newOpenAI NewOpenAI,
	) {
		gen := newOpenAI(GeneratorArgs{
			BaseURL: server.URL,
			Model:   "test-model",
		}, "bad")

		_, err := gen.Complete(t.Context(), []Message{
			{Role: RoleUser, Text: "hi"},
		})
		if err == nil {
			t.Fatal("should error")
		}
		var oaiErr OpenAIError
		if !errors.As(err, &oaiErr) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "bad key") {
			t.Fatalf("got %v", err)
		}
	})
}
