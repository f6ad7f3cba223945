package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// HttpClient 访问 easybase http 服务
type HttpClient struct {
	baseUrl string
	client  *http.Client
}

func NewHttpClient(baseUrl string) *HttpClient {
	return &HttpClient{baseUrl: strings.TrimRight(baseUrl, "/"), client: http.DefaultClient}
}

type EncodeRequest struct {
	Scheme   string `json:"scheme"`
	Alphabet string `json:"alphabet,omitempty"`
	Padding  *bool  `json:"padding,omitempty"`
	Checksum bool   `json:"checksum,omitempty"`
	Data     string `json:"data,omitempty"`
	Hex      string `json:"hex,omitempty"`
}

type DecodeRequest struct {
	Scheme   string `json:"scheme"`
	Alphabet string `json:"alphabet,omitempty"`
	Checksum bool   `json:"checksum,omitempty"`
	Text     string `json:"text"`
}

type DecodeResponse struct {
	Hex   string `json:"hex"`
	Plain string `json:"plain"`
}

type AlphabetEntry struct {
	Name    string `json:"name"`
	Radix   int    `json:"radix"`
	Symbols string `json:"symbols"`
}

func (c *HttpClient) Encode(req EncodeRequest) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", errors.WithStack(err)
	}
	body, err := c.Post("/encode", data)
	if err != nil {
		return "", err
	}

	type Response struct {
		Text string `json:"text"`
	}
	resp := Response{}
	if err = json.Unmarshal(body, &resp); err != nil {
		return "", errors.Wrap(err, "unmarshal encode response")
	}
	return resp.Text, nil
}

func (c *HttpClient) Decode(req DecodeRequest) (*DecodeResponse, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	body, err := c.Post("/decode", data)
	if err != nil {
		return nil, err
	}

	resp := &DecodeResponse{}
	if err = json.Unmarshal(body, resp); err != nil {
		return nil, errors.Wrap(err, "unmarshal decode response")
	}
	return resp, nil
}

func (c *HttpClient) Alphabets() ([]AlphabetEntry, error) {
	body, err := c.Get("/alphabets")
	if err != nil {
		return nil, err
	}

	type Response struct {
		Alphabets []AlphabetEntry `json:"alphabets"`
	}
	resp := Response{}
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "unmarshal alphabets response")
	}
	return resp.Alphabets, nil
}

func (c *HttpClient) Register(entry AlphabetEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = c.Post("/alphabets", data)
	return err
}

func (c *HttpClient) Url(route string) string {
	return c.baseUrl + route
}

func (c *HttpClient) Get(route string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, c.Url(route), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create get request failed")
	}
	return c.Do(req)
}

func (c *HttpClient) Post(route string, body []byte) ([]byte, error) {
	req, err := http.NewRequest(http.MethodPost, c.Url(route), bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "create post request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	return c.Do(req)
}

// Do 2xx 以外的状态码返回 *StatusError
func (c *HttpClient) Do(req *http.Request) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s failed", req.Method, req.URL.Path)
	}
	defer resp.Body.Close()

	b, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read resp body failed")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		e := &StatusError{Code: resp.StatusCode}
		type Response struct {
			Error string `json:"error"`
		}
		r := Response{}
		if json.Unmarshal(b, &r) == nil && r.Error != "" {
			e.Message = r.Error
		} else {
			e.Message = string(b)
		}
		return nil, e
	}
	return b, nil
}

type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status code:%d %s", e.Code, e.Message)
}
