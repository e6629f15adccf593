package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/identity-api/config"
	"github.com/oksasatya/identity-api/internal/domain/gateway"
	"github.com/oksasatya/identity-api/pkg/helpers"
)

// App-level container sharing constructed components across packages so the
// router can auto-wire feature modules.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	esClient    *elasticsearch.Client
	rabbitPub   *helpers.RabbitPublisher

	authGateway    gateway.AuthGateway
	tokenValidator gateway.TokenValidator
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }

func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }

func SetPGPool(p *pgxpool.Pool) { pgPool = p }
func GetPGPool() *pgxpool.Pool  { return pgPool }

func SetRedis(r *redis.Client) { redisClient = r }
func GetRedis() *redis.Client  { return redisClient }

func SetES(c *elasticsearch.Client) { esClient = c }
func GetES() *elasticsearch.Client  { return esClient }

func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }

func SetAuthGateway(g gateway.AuthGateway) { authGateway = g }
func GetAuthGateway() gateway.AuthGateway  { return authGateway }

func SetTokenValidator(v gateway.TokenValidator) { tokenValidator = v }
func GetTokenValidator() gateway.TokenValidator  { return tokenValidator }
