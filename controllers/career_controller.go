package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/satyarajasree/digital-marketing-backend/models"
	"github.com/satyarajasree/digital-marketing-backend/services"
	"github.com/satyarajasree/digital-marketing-backend/utils"
)

type CareerController struct {
	db         *gorm.DB
	notifier   *services.Notifier
	uploadRoot string
}

func NewCareerController(db *gorm.DB, notifier *services.Notifier, uploadRoot string) *CareerController {
	return &CareerController{db: db, notifier: notifier, uploadRoot: uploadRoot}
}

type jobItem struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Department   string    `json:"department"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Experience   int       `json:"experience"`
	Requirements string    `json:"requirements"`
	IsActive     bool      `json:"is_active"`
	PostedOn     time.Time `json:"posted_on"`
}

type jobApplicationPayload struct {
	Job         uint   `form:"job" binding:"required"`
	FullName    string `form:"full_name" binding:"required,max=255"`
	Email       string `form:"email" binding:"required,email"`
	Phone       string `form:"phone" binding:"max=20"`
	CoverLetter string `form:"cover_letter"`
}

type jobApplicationItem struct {
	ID          uint      `json:"id"`
	Job         uint      `json:"job"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CoverLetter string    `json:"cover_letter"`
	Resume      string    `json:"resume"`
	AppliedOn   time.Time `json:"applied_on"`
}

type openApplicationPayload struct {
	FullName        string `form:"full_name" binding:"required,max=255"`
	Email           string `form:"email" binding:"required,email"`
	Phone           string `form:"phone" binding:"max=20"`
	DesiredPosition string `form:"desired_position" binding:"max=255"`
	CoverLetter     string `form:"cover_letter"`
}

type openApplicationItem struct {
	ID              uint      `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	DesiredPosition string    `json:"desired_position"`
	CoverLetter     string    `json:"cover_letter"`
	Resume          string    `json:"resume"`
	SubmittedOn     time.Time `json:"submitted_on"`
}

// GET /jobs
func (cc *CareerController) ListJobs(c *gin.Context) {
	var jobs []models.JobRequirement
	err := cc.db.Where("is_active = ?", true).Order("posted_on desc").Find(&jobs).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch jobs")
		return
	}
	items := make([]jobItem, 0, len(jobs))
	for _, job := range jobs {
		items = append(items, toJobItem(job))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": items})
}

// GET /jobs/:id
func (cc *CareerController) GetJob(c *gin.Context) {
	// An id that does not parse can never match a row, so it is a plain 404.
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusNotFound, "job not found")
		return
	}
	var job models.JobRequirement
	if err := cc.db.Where("is_active = ?", true).First(&job, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "job not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": toJobItem(job)})
}

// POST /apply
// multipart/form-data with a required "resume" file. The thank-you email is
// best-effort: failures are logged and the request still succeeds.
func (cc *CareerController) Apply(c *gin.Context) {
	var req jobApplicationPayload
	if err := c.ShouldBind(&req); err != nil {
		respondValidationErrors(c, fieldErrors(err))
		return
	}
	resume, err := c.FormFile("resume")
	if err != nil {
		respondValidationErrors(c, map[string]string{"resume": "this field is required"})
		return
	}

	var job models.JobRequirement
	if err := cc.db.First(&job, req.Job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondValidationErrors(c, map[string]string{"job": "job requirement not found"})
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to look up job")
		return
	}

	resumePath, err := utils.SaveUploadedFile(c, resume, cc.uploadRoot, "resumes")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save resume")
		return
	}

	application := models.JobApplication{
		JobID:       job.ID,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		CoverLetter: req.CoverLetter,
		Resume:      resumePath,
	}
	if err := cc.db.Create(&application).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save application")
		return
	}

	if err := cc.notifier.NotifyJobApplication(&application, job.Title); err != nil {
		utils.LogError(err, "job application notification")
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "result": toJobApplicationItem(application)})
}

// POST /open-application
func (cc *CareerController) SubmitOpenApplication(c *gin.Context) {
	var req openApplicationPayload
	if err := c.ShouldBind(&req); err != nil {
		respondValidationErrors(c, fieldErrors(err))
		return
	}
	resume, err := c.FormFile("resume")
	if err != nil {
		respondValidationErrors(c, map[string]string{"resume": "this field is required"})
		return
	}

	resumePath, err := utils.SaveUploadedFile(c, resume, cc.uploadRoot, "open_applications")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save resume")
		return
	}

	application := models.OpenApplication{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		DesiredPosition: req.DesiredPosition,
		CoverLetter:     req.CoverLetter,
		Resume:          resumePath,
	}
	if err := cc.db.Create(&application).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save application")
		return
	}

	if err := cc.notifier.NotifyOpenApplication(&application); err != nil {
		utils.LogError(err, "open application notification")
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "result": toOpenApplicationItem(application)})
}

func toJobItem(job models.JobRequirement) jobItem {
	return jobItem{
		ID:           job.ID,
		Title:        job.Title,
		Department:   job.Department,
		Location:     job.Location,
		Description:  job.Description,
		Experience:   job.Experience,
		Requirements: job.Requirements,
		IsActive:     job.IsActive,
		PostedOn:     job.PostedOn,
	}
}

func toJobApplicationItem(app models.JobApplication) jobApplicationItem {
	return jobApplicationItem{
		ID:          app.ID,
		Job:         app.JobID,
		FullName:    app.FullName,
		Email:       app.Email,
		Phone:       app.Phone,
		CoverLetter: app.CoverLetter,
		Resume:      app.Resume,
		AppliedOn:   app.AppliedOn,
	}
}

func toOpenApplicationItem(app models.OpenApplication) openApplicationItem {
	return openApplicationItem{
		ID:              app.ID,
		FullName:        app.FullName,
		Email:           app.Email,
		Phone:           app.Phone,
		DesiredPosition: app.DesiredPosition,
		CoverLetter:     app.CoverLetter,
		Resume:          app.Resume,
		SubmittedOn:     app.SubmittedOn,
	}
}
