package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/wb-go/wbf/ginext"

	"alumniPortal/cmd/middleware"
	"alumniPortal/internal/service"
)

type Routers struct {
	Service    service.Service
	CORSOrigin string
}

func NewRouters(r *Routers) *ginext.Engine {
	app := ginext.New("release")

	app.Use(middleware.LoggingMiddleware())
	app.Use(cors.New(corsConfig(r.CORSOrigin)))

	app.POST("/signup", r.Service.Signup)
	app.POST("/login", r.Service.Login)
	app.POST("/alumni-registration", r.Service.RegisterAlumni)
	app.POST("/save-payment", r.Service.SavePayment)

	app.GET("/", func(c *ginext.Context) {
		c.File("./frontend/index.html")
	})
	app.GET("/signup", func(c *ginext.Context) {
		c.File("./frontend/signup.html")
	})
	app.GET("/homepage", func(c *ginext.Context) {
		c.File("./frontend/homepage.html")
	})
	app.GET("/alumni-registration", func(c *ginext.Context) {
		c.File("./frontend/alumni-registration.html")
	})
	app.Static("/frontend", "./frontend")

	return app
}

func corsConfig(origin string) cors.Config {
	cfg := cors.DefaultConfig()
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{origin}
	}
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}
