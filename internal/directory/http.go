package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// HTTPResolver queries the real directory service over HTTP.
type HTTPResolver struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// NewHTTPResolver builds a resolver against the given base URL. The client
// is expected to carry the upstream timeout; one attempt per lookup.
func NewHTTPResolver(baseURL string, client *http.Client, log *zap.Logger) *HTTPResolver {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTPResolver{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		log:     log.Named("directory.http"),
	}
}

// Resolve calls GET {base}/switch-port/{kennitala}.
func (r *HTTPResolver) Resolve(ctx context.Context, kennitala string) (Resolution, error) {
	endpoint := r.baseURL + "/switch-port/" + url.PathEscape(kennitala)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Resolution{}, fmt.Errorf("build directory request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return Resolution{}, fmt.Errorf("directory lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Warn("directory lookup returned non-200",
			zap.Int("status", resp.StatusCode),
		)
		return Resolution{}, fmt.Errorf("directory lookup returned status %d", resp.StatusCode)
	}

	var resolution Resolution
	if err := json.NewDecoder(resp.Body).Decode(&resolution); err != nil {
		return Resolution{}, fmt.Errorf("decode directory response: %w", err)
	}
	return resolution, nil
}
