package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	AllowedOrigins []string `json:",optional"`

	Mongo     MongoConf
	ChatModel ModelConf

	LogConf logx.LogConf
}

type MongoConf struct {
	Uri      string
	Database string
}

type ModelConf struct {
	BaseUrl string
	APIKey  string
	Model   string
	// Deadline for a single model round-trip; a hung call counts as a
	// transport failure, not a stuck turn.
	TimeoutSec int64 `json:",default=30"`
}
