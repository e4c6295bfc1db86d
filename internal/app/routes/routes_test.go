package routes

import (
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/sectiontrack/internal/app/controllers"
)

func TestSetupRouterRegistersTableTwice(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRouter(r,
		controllers.NewUserController(nil),
		controllers.NewSectionController(nil),
		controllers.NewStudentController(nil),
	)

	got := []string{}
	for _, ri := range r.Routes() {
		got = append(got, ri.Method+" "+ri.Path)
	}
	sort.Strings(got)

	table := []string{
		"GET /users",
		"GET /sections",
		"GET /sections/:id",
		"POST /sections/:id",
		"GET /sections/:id/students",
		"GET /students/:id",
		"GET /students/:id/course",
		"GET /students/:id/mentor",
		"GET /students/:id/attendance",
		"PUT /students/:id/attendance",
	}
	want := []string{}
	for _, route := range table {
		want = append(want, route)
		parts := strings.SplitN(route, " ", 2)
		want = append(want, parts[0]+" /api/v1"+parts[1])
	}
	sort.Strings(want)

	assert.Equal(t, want, got)
}

func TestSetupSwagger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupSwagger(r)

	routes := r.Routes()
	if assert.Len(t, routes, 1) {
		assert.Equal(t, "/swagger/*any", routes[0].Path)
	}
}
