package e2e

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config Config
	client *http.Client
}

// SetupSuite loads the environment configuration and skips the suite when
// no server address is configured.
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.BaseURL == "" {
		s.T().Skip("E2E_BASE_URL not set")
	}
	s.Config.BaseURL = strings.TrimSuffix(s.Config.BaseURL, "/")
	s.client = &http.Client{Timeout: 2 * time.Minute}
}

// Step prints a colorized header and runs fn as a sub-test.
func (s *BaseHTTPSuite) Step(name string, fn func()) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
	s.Run(name, fn)
}

// Upload posts payload as the "file" field of a multipart form.
func (s *BaseHTTPSuite) Upload(filename string, payload []byte) (int, string) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	s.Require().NoError(err)
	_, err = part.Write(payload)
	s.Require().NoError(err)
	s.Require().NoError(w.Close())

	req, err := http.NewRequest(http.MethodPost, s.Config.BaseURL+"/", &buf)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return s.do(req)
}

func (s *BaseHTTPSuite) Get(path string) (int, string) {
	req, err := http.NewRequest(http.MethodGet, s.Config.BaseURL+path, nil)
	s.Require().NoError(err)
	return s.do(req)
}

func (s *BaseHTTPSuite) do(req *http.Request) (int, string) {
	start := time.Now()
	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	line := fmt.Sprintf("HTTP %s %s [%d] in %v", req.Method, req.URL.Path, resp.StatusCode, time.Since(start))
	if s.Config.DebugBodies && len(body) < 4096 {
		line += "\n" + string(body)
	}
	s.T().Log(line)
	return resp.StatusCode, string(body)
}
