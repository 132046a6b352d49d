package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hjortab/hjort-api/middlewares"
	"github.com/hjortab/hjort-api/models"
	"github.com/hjortab/hjort-api/router"
	"github.com/hjortab/hjort-api/utils"
)

func setupCourseMenuRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	db, err := gorm.Open(sqlite.Open("file:course_menu_test?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CourseMenu{}, &models.Course{}))
	db.Where("1 = 1").Delete(&models.Course{})
	db.Where("1 = 1").Delete(&models.CourseMenu{})
	return router.SetupRouter(db, middlewares.NewRateLimiter(50, 1)), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCourseMenuRoundTrip(t *testing.T) {
	r, db := setupCourseMenuRouter(t)
	token := authHeader(t)

	menu := models.CourseMenu{Title: "Test", PriceTot: 100}
	require.NoError(t, db.Create(&menu).Error)

	w := doJSON(t, r, http.MethodGet, "/api/public/course-menu", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var menus []models.CourseMenu
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &menus))
	require.Len(t, menus, 1)
	assert.Equal(t, "Test", menus[0].Title)
	assert.Equal(t, 100, menus[0].PriceTot)
	assert.Equal(t, menu.ID, menus[0].ID)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/protected/course-menu/%d", menu.ID),
		map[string]interface{}{"title": "Test", "priceTot": 200}, token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/public/course-menu", nil, "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &menus))
	require.Len(t, menus, 1)
	assert.Equal(t, "Test", menus[0].Title)
	assert.Equal(t, 200, menus[0].PriceTot)
	assert.Equal(t, menu.ID, menus[0].ID)
}

func TestUpdateCourseMenuUnknownID(t *testing.T) {
	r, _ := setupCourseMenuRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/protected/course-menu/424242",
		map[string]interface{}{"title": "Test", "priceTot": 100}, authHeader(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "id", resp["field"])
	assert.Equal(t, "The course menu with this id does not exist!", resp["message"])
}

func TestCreateCourse(t *testing.T) {
	r, db := setupCourseMenuRouter(t)
	token := authHeader(t)

	menu := models.CourseMenu{Title: "Avsmakningsmeny", PriceTot: 3500}
	require.NoError(t, db.Create(&menu).Error)

	w := doJSON(t, r, http.MethodPost, "/api/protected/course", map[string]interface{}{
		"courseMenuId": fmt.Sprint(menu.ID),
		"name":         "Löjrom med brioche",
		"type":         "starter",
	}, token)
	assert.Equal(t, http.StatusCreated, w.Code)

	// The course list is fetched by parent menu id on a public route.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/public/course/%d", menu.ID), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var courses []models.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &courses))
	require.Len(t, courses, 1)
	assert.Equal(t, "Löjrom med brioche", courses[0].Name)
	assert.Equal(t, "starter", courses[0].Type)
	assert.Equal(t, menu.ID, courses[0].CourseMenuID)
}

func TestCreateCourseUnknownParentMenu(t *testing.T) {
	r, _ := setupCourseMenuRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/protected/course", map[string]interface{}{
		"courseMenuId": "424242",
		"name":         "Orphan course",
		"type":         "main",
	}, authHeader(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "courseMenuId", resp["field"])
}

func TestCreateCourseInvalidType(t *testing.T) {
	r, db := setupCourseMenuRouter(t)

	menu := models.CourseMenu{Title: "Avsmakningsmeny", PriceTot: 3500}
	require.NoError(t, db.Create(&menu).Error)

	w := doJSON(t, r, http.MethodPost, "/api/protected/course", map[string]interface{}{
		"courseMenuId": fmt.Sprint(menu.ID),
		"name":         "Mystery dish",
		"type":         "midnight-snack",
	}, authHeader(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "type", resp[0]["field"])
	assert.Equal(t, "Invalid course type. Expected one of: starter, main, or dessert.", resp[0]["message"])
}

func TestUpdateAndDeleteCourse(t *testing.T) {
	r, db := setupCourseMenuRouter(t)
	token := authHeader(t)

	menu := models.CourseMenu{Title: "Avsmakningsmeny", PriceTot: 3500}
	require.NoError(t, db.Create(&menu).Error)
	course := models.Course{CourseMenuID: menu.ID, Name: "Hjortfilé", Type: "main"}
	require.NoError(t, db.Create(&course).Error)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/protected/course/%d", course.ID),
		map[string]interface{}{"name": "Hjortfilé med svamp", "type": "main"}, token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var updated models.Course
	require.NoError(t, db.First(&updated, course.ID).Error)
	assert.Equal(t, "Hjortfilé med svamp", updated.Name)

	w = doJSON(t, r, http.MethodDelete, "/api/protected/course/424242", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "id", resp["field"])
	assert.Equal(t, "The course with this id does not exist!", resp["message"])

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/protected/course/%d", course.ID), nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	db.Model(&models.Course{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
