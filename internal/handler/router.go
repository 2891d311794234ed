package handler

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Routes bundles what the router wires up. Submissions may be nil when
// submitted addresses are not stored.
type Routes struct {
	Page        *PageHandler
	Form        *FormHandler
	Submissions *SubmissionHandler
	Templates   *template.Template
}

// NewRouter builds the gin engine for the address form service
func NewRouter(rt Routes) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger())

	if rt.Templates != nil {
		r.SetHTMLTemplate(rt.Templates)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	if rt.Page != nil {
		r.GET("/", rt.Page.Index)
	}

	f := r.Group("/form")
	f.GET("", rt.Form.View)
	f.POST("/place", rt.Form.SelectPlace)
	f.PATCH("/fields/:field", rt.Form.UpdateField)
	f.POST("/fields/:field/touch", rt.Form.TouchField)
	f.POST("/submit", rt.Form.Submit)

	api := r.Group("/api")
	api.POST("/decompose", Decompose)
	api.POST("/validate", Validate)

	if rt.Submissions != nil {
		r.GET("/addresses", rt.Submissions.Search)
		r.GET("/addresses/:id", rt.Submissions.Get)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
