package httpclient

import "net/http"

// HTTPClient permite inyectar un cliente HTTP falso en los tests
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
