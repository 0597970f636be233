package test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"stylistapi/services"
)

func JsonString(model interface{}) string {
	data, _ := json.Marshal(model)
	return string(data)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

// NewMultipartRequest builds an upload request with plain form fields and any
// number of files under the given file field name.
func NewMultipartRequest(method string, target string, fields map[string]string, fileField string, files map[string][]byte) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		writer.WriteField(key, value)
	}
	for name, content := range files {
		part, _ := writer.CreateFormFile(fileField, name)
		part.Write(content)
	}
	writer.Close()

	req := httptest.NewRequest(method, target, &body)
	req.Header.Add("Content-Type", writer.FormDataContentType())
	req.Header.Add("Accept", "application/json")
	return req
}

// PNGBytes renders a solid-color PNG fixture of the given dimensions.
func PNGBytes(width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 80, A: 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

// MockOutcome is one scripted backend reply.
type MockOutcome struct {
	Text string
	Err  error
}

// MockBackend plays back scripted outcomes in call order; the last outcome
// repeats once the script runs out.
type MockBackend struct {
	BackendName string
	Outcomes    []MockOutcome

	mu    sync.Mutex
	calls int
}

func (m *MockBackend) Name() string {
	if m.BackendName == "" {
		return "mock"
	}
	return m.BackendName
}

func (m *MockBackend) Complete(ctx context.Context, req *services.ModelRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := m.calls
	m.calls++
	if idx >= len(m.Outcomes) {
		idx = len(m.Outcomes) - 1
	}
	if idx < 0 {
		return "", nil
	}
	outcome := m.Outcomes[idx]
	return outcome.Text, outcome.Err
}

func (m *MockBackend) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
