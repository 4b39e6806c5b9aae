package shell

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// NetworkClient is the production contracts.Downloader: a plain
// HTTP(S) GET of the requested address.
type NetworkClient struct {
	client *http.Client
}

func NewNetworkClient(client *http.Client) *NetworkClient {
	return &NetworkClient{client: client}
}

func (this *NetworkClient) Download(address url.URL) (io.ReadCloser, error) {
	response, err := this.client.Get(address.String())
	if err != nil {
		return nil, err
	}
	if response.StatusCode != http.StatusOK {
		_ = response.Body.Close()
		return nil, fmt.Errorf("non 200 status code: %s", response.Status)
	}
	return response.Body, nil
}

func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   1 * time.Second,
				KeepAlive: 1 * time.Second,
			}).DialContext,
			MaxIdleConns:          32,
			IdleConnTimeout:       32 * time.Second,
			TLSHandshakeTimeout:   16 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			MaxIdleConnsPerHost:   -1,
			DisableKeepAlives:     true,
		},
	}
}
