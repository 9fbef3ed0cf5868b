package util

import (
	"net/http"
	"net/url"
	"testing"
)

func TestNewProxyFuncScheme(t *testing.T) {
	proxyFunc := NewProxyFunc("http://proxy-http:8080", "http://proxy-https:8443", "")

	httpsReq := &http.Request{URL: &url.URL{Scheme: "https", Host: "example.com"}}
	u, err := proxyFunc(httpsReq)
	if err != nil {
		t.Fatalf("proxy func: %v", err)
	}
	if u.Host != "proxy-https:8443" {
		t.Errorf("https proxy = %v", u)
	}

	httpReq := &http.Request{URL: &url.URL{Scheme: "http", Host: "example.com"}}
	u, err = proxyFunc(httpReq)
	if err != nil {
		t.Fatalf("proxy func: %v", err)
	}
	if u.Host != "proxy-http:8080" {
		t.Errorf("http proxy = %v", u)
	}
}

func TestNewProxyFuncUnset(t *testing.T) {
	proxyFunc := NewProxyFunc("", "", "")
	// Falls back to the environment reader
	if proxyFunc == nil {
		t.Fatal("nil proxy func")
	}
}
