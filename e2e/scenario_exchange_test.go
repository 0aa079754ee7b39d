package e2e

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type testExchangeSuite struct {
	BaseHTTPSuite
}

func TestExchangeSuite(t *testing.T) {
	suite.Run(t, &testExchangeSuite{})
}

func (s *testExchangeSuite) TestUploadListDownload() {
	filename := fmt.Sprintf("e2e-%s.bin", uuid.NewString()[:8])
	payload := []byte("0123456789")

	s.Step("Step 1: Upload a small archive", func() {
		status, body := s.Upload(filename, payload)
		s.Require().Equal(http.StatusOK, status)
		s.Require().Equal(fmt.Sprintf("File '%s' uploaded successfully.", filename), body)
	})

	s.Step("Step 2: File shows up in the listing", func() {
		status, body := s.Get("/")
		s.Require().Equal(http.StatusOK, status)
		s.Require().Contains(body, filename)
	})

	s.Step("Step 3: Download returns the exact bytes", func() {
		status, body := s.Get("/files/" + filename)
		s.Require().Equal(http.StatusOK, status)
		s.Require().Equal(string(payload), body)
	})
}

func (s *testExchangeSuite) TestRejections() {
	s.Step("Unsupported extension", func() {
		status, _ := s.Upload("e2e.exe", []byte("MZ"))
		s.Require().Equal(http.StatusUnsupportedMediaType, status)
	})

	s.Step("Oversized payload", func() {
		status, _ := s.Upload("e2e-big.zip", bytes.Repeat([]byte{0}, int(s.Config.MaxFileSizeBytes)+1))
		s.Require().Equal(http.StatusRequestEntityTooLarge, status)
	})

	s.Step("Traversal attempt", func() {
		status, _ := s.Upload("../e2e-escape.bin", []byte("x"))
		s.Require().Equal(http.StatusBadRequest, status)
	})

	s.Step("Unknown file", func() {
		status, _ := s.Get("/files/does-not-exist")
		s.Require().Equal(http.StatusNotFound, status)
	})
}
