package rgadguard

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/oshokin/msstore-grabber/internal/config"
	"github.com/oshokin/msstore-grabber/internal/logger"
	http_transport "github.com/oshokin/msstore-grabber/internal/transport/http"
	"github.com/oshokin/msstore-grabber/internal/utils"
)

// Client defines the interface for interacting with the rg-adguard link generator.
type Client interface {
	// GetFiles posts a lookup and returns the raw HTML table of download links.
	GetFiles(ctx context.Context, request *GetFilesRequest) (string, error)
	// FetchFile opens a download stream for the specified package URL.
	FetchFile(ctx context.Context, fileURL string) (*FetchFileResult, error)
}

// ClientImpl implements the Client interface.
type ClientImpl struct {
	// endpoint is the link generator API address.
	endpoint string
	// apiClient sends lookups with the Referer the service expects.
	apiClient *http.Client
	// downloadClient fetches package files.
	downloadClient *http.Client
}

// NewClient creates and returns a new instance of ClientImpl.
// Both HTTP clients share the User-Agent, logging and decompression transports;
// only lookups carry the Referer header.
func NewClient(cfg *config.Config) (Client, error) {
	endpoint, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint URL: %w", err)
	}

	base := http_transport.NewLogTransport(
		http_transport.NewDecompressTransport(http.DefaultTransport),
		cfg.MaxLogLength)
	userAgentProvider := utils.NewSimpleUserAgentProvider(cfg.UserAgent)

	apiClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewHeaderInjector(base, map[string]string{"Referer": cfg.Referer}),
			userAgentProvider),
		Timeout: cfg.ParsedRequestTimeout,
	}

	downloadClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(base, userAgentProvider),
		Timeout:   cfg.ParsedRequestTimeout,
	}

	return &ClientImpl{
		endpoint:       endpoint.String(),
		apiClient:      apiClient,
		downloadClient: downloadClient,
	}, nil
}

// GetFiles posts a lookup and returns the raw HTML table of download links.
// Service failures reported inside the response body are turned into errors.
func (c *ClientImpl) GetFiles(ctx context.Context, request *GetFilesRequest) (string, error) {
	form := url.Values{}
	form.Set(formFieldType, request.LookupType)
	form.Set(lookupFieldName(request.LookupType), request.Value)
	form.Set(formFieldRing, request.Ring)
	form.Set(formFieldLanguage, request.Language)

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}

	httpRequest.Header.Set("Content-Type", contentTypeForm)

	logger.DebugKV(ctx, "Querying link generator",
		"type", request.LookupType,
		"ring", request.Ring,
		"lang", request.Language)

	response, err := c.apiClient.Do(httpRequest)
	if err != nil {
		return "", err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if !isSuccessStatus(response.StatusCode) {
		return "", fmt.Errorf("%w: service returned %s", ErrUnexpectedHTTPStatus, statusLine(response))
	}

	html := string(body)

	if containsFold(html, internalServerErrorMarker) {
		return "", ErrInternalServerError
	}

	if containsFold(html, emptyListMarker) {
		return "", ErrEmptyList
	}

	return html, nil
}

// FetchFile opens a download stream for the specified package URL.
func (c *ClientImpl) FetchFile(ctx context.Context, fileURL string) (*FetchFileResult, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	response, err := c.downloadClient.Do(request)
	if err != nil {
		return nil, err
	}

	if !isSuccessStatus(response.StatusCode) {
		response.Body.Close() //nolint:errcheck,gosec // Error on close is not critical here.

		return nil, fmt.Errorf("%w: %s", ErrUnexpectedHTTPStatus, statusLine(response))
	}

	return &FetchFileResult{
		Body:       response.Body,
		TotalBytes: response.ContentLength,
	}, nil
}

// lookupFieldName returns the form field that carries the lookup value.
func lookupFieldName(lookupType string) string {
	if strings.EqualFold(lookupType, config.LookupTypeURL) {
		return formFieldURL
	}

	return lookupType
}

func isSuccessStatus(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

// statusLine returns the status code with the reason phrase the server sent.
func statusLine(response *http.Response) string {
	if response.Status != "" {
		return response.Status
	}

	return fmt.Sprintf("%d %s", response.StatusCode, http.StatusText(response.StatusCode))
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
