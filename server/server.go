package server

import (
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	"github.com/treeforest/easybase/alphabet"
	"github.com/treeforest/easybase/base16"
	"github.com/treeforest/easybase/config"
	"github.com/treeforest/easybase/dao"
	"github.com/treeforest/easybase/pkg/errs"
	"github.com/treeforest/easybase/text"
	log "github.com/treeforest/logger"
)

const requestIdHeader = "X-Request-Id"

// HttpServer 编解码 http 服务
type HttpServer struct {
	conf     *config.Config
	registry *alphabet.Registry
	store    *dao.DAO // 可以为 nil，此时注册的字母表不持久化
	srv      *http.Server
}

func NewHttpServer(conf *config.Config, registry *alphabet.Registry, store *dao.DAO) *HttpServer {
	s := &HttpServer{conf: conf, registry: registry, store: store}
	s.srv = &http.Server{Addr: fmt.Sprintf(":%d", conf.HttpServerPort), Handler: s.Handler()}
	return s
}

// Handler 路由
func (s *HttpServer) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), requestId)

	r.POST("/encode", s.handleEncode)
	r.POST("/decode", s.handleDecode)
	r.GET("/alphabets", s.handleGetAlphabets)
	r.POST("/alphabets", s.handlePostAlphabet)
	return r
}

// Run 阻塞直到服务停止
func (s *HttpServer) Run() error {
	log.Infof("http server listen on %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "http server run failed")
	}
	return nil
}

func (s *HttpServer) Close() error {
	return s.srv.Close()
}

func requestId(c *gin.Context) {
	id := c.GetHeader(requestIdHeader)
	if id == "" {
		id = uuid.New()
	}
	c.Set(requestIdHeader, id)
	c.Header(requestIdHeader, id)
	c.Next()
}

type encodeRequest struct {
	Scheme   string `json:"scheme" binding:"required"`
	Alphabet string `json:"alphabet"`
	Padding  *bool  `json:"padding"`
	Checksum bool   `json:"checksum"`
	Data     string `json:"data"` // 明文
	Hex      string `json:"hex"`  // 十六进制的原始字节，优先于 data
}

type decodeRequest struct {
	Scheme   string `json:"scheme" binding:"required"`
	Alphabet string `json:"alphabet"`
	Checksum bool   `json:"checksum"`
	Text     string `json:"text"`
}

type alphabetEntry struct {
	Name    string `json:"name" binding:"required"`
	Radix   int    `json:"radix" binding:"required"`
	Symbols string `json:"symbols" binding:"required"`
}

func (s *HttpServer) options(radix int, name string, padding *bool) (text.Options, error) {
	opts, err := s.conf.Options(s.registry, radix)
	if err != nil {
		return text.Options{}, err
	}
	if name != "" {
		a, ok := s.registry.Get(name)
		if !ok {
			return text.Options{}, errs.Configuration("unknown alphabet %q", name)
		}
		if err = a.CheckRadix(radix); err != nil {
			return text.Options{}, err
		}
		opts.Alphabet = a
	}
	if padding != nil {
		opts.NoPadding = !*padding
	}
	return opts, nil
}

func (s *HttpServer) handleEncode(c *gin.Context) {
	req := encodeRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request obj error"})
		return
	}

	radix, err := RadixOf(req.Scheme)
	if err != nil {
		s.fail(c, err)
		return
	}
	opts, err := s.options(radix, req.Alphabet, req.Padding)
	if err != nil {
		s.fail(c, err)
		return
	}

	var payload []byte
	if req.Hex != "" {
		payload, err = base16.Decode(req.Hex)
	} else {
		payload, err = text.PlainBytes(req.Data, opts)
	}
	if err != nil {
		s.fail(c, err)
		return
	}

	encoded, err := Render(radix, payload, opts, req.Checksum)
	if err != nil {
		s.fail(c, err)
		return
	}

	type Response struct {
		Text string `json:"text"`
	}
	c.JSON(http.StatusOK, Response{Text: encoded})
}

func (s *HttpServer) handleDecode(c *gin.Context) {
	req := decodeRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request obj error"})
		return
	}

	radix, err := RadixOf(req.Scheme)
	if err != nil {
		s.fail(c, err)
		return
	}
	opts, err := s.options(radix, req.Alphabet, nil)
	if err != nil {
		s.fail(c, err)
		return
	}

	v, err := Parse(radix, req.Text, opts, req.Checksum)
	if err != nil {
		s.fail(c, err)
		return
	}

	type Response struct {
		Hex   string `json:"hex"`
		Plain string `json:"plain,omitempty"`
	}
	resp := Response{Hex: hex.EncodeToString(v.Bytes())}
	if plain, err := v.PlainText(); err == nil {
		resp.Plain = plain
	}
	c.JSON(http.StatusOK, resp)
}

func (s *HttpServer) handleGetAlphabets(c *gin.Context) {
	type Response struct {
		Alphabets []alphabetEntry `json:"alphabets"`
	}
	resp := Response{Alphabets: make([]alphabetEntry, 0)}
	for _, a := range s.registry.List() {
		resp.Alphabets = append(resp.Alphabets, alphabetEntry{Name: a.Name(), Radix: a.Radix(), Symbols: a.Symbols()})
	}
	c.JSON(http.StatusOK, resp)
}

func (s *HttpServer) handlePostAlphabet(c *gin.Context) {
	req := alphabetEntry{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request obj error"})
		return
	}

	a, err := alphabet.NewRadix(req.Radix, req.Name, req.Symbols)
	if err != nil {
		s.fail(c, err)
		return
	}
	if err = s.registry.Register(a); err != nil {
		s.fail(c, err)
		return
	}
	if s.store != nil {
		if err = s.store.Put(a); err != nil {
			// 持久化失败，撤销注册
			s.registry.Remove(a.Name())
			s.fail(c, err)
			return
		}
	}

	log.Infof("register alphabet success, name=%s radix=%d", a.Name(), a.Radix())
	c.JSON(http.StatusCreated, req)
}

// fail 按错误类型返回状态码
func (s *HttpServer) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errs.IsFormat(err), errs.IsChecksum(err):
		status = http.StatusBadRequest
	case errs.IsConfiguration(err):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		log.Errorf("[%s] %s %s: %+v", c.GetString(requestIdHeader), c.Request.Method, c.Request.URL.Path, err)
	} else {
		log.Warnf("[%s] %s %s: %v", c.GetString(requestIdHeader), c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
