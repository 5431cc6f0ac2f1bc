package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/satyarajasree/digital-marketing-backend/models"
	"github.com/satyarajasree/digital-marketing-backend/services"
	"github.com/satyarajasree/digital-marketing-backend/utils"
)

type ContactController struct {
	db       *gorm.DB
	notifier *services.Notifier
}

func NewContactController(db *gorm.DB, notifier *services.Notifier) *ContactController {
	return &ContactController{db: db, notifier: notifier}
}

type contactPayload struct {
	Fullname string `json:"fullname" binding:"required,max=100"`
	Mobile   string `json:"mobile" binding:"required,max=15"`
	Email    string `json:"email" binding:"required,email"`
	Subject  string `json:"subject" binding:"required,max=255"`
	Message  string `json:"message" binding:"required"`
}

type contactItem struct {
	ID        uint      `json:"id"`
	Fullname  string    `json:"fullname"`
	Mobile    string    `json:"mobile"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// POST /contact
// The record is persisted first; a notification failure after that still
// fails the request. See DESIGN.md for the rationale behind keeping this
// asymmetric with the application endpoints.
func (cc *ContactController) Create(c *gin.Context) {
	var req contactPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationErrors(c, fieldErrors(err))
		return
	}

	contact := models.Contact{
		Fullname: req.Fullname,
		Mobile:   req.Mobile,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
	}
	if err := cc.db.Create(&contact).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save contact")
		return
	}

	if err := cc.notifier.NotifyContact(&contact); err != nil {
		utils.LogError(err, "contact notification")
		respondError(c, http.StatusBadGateway, "failed to send notification email")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"result": gin.H{
			"message": "Contact submitted successfully",
			"contact": toContactItem(contact),
		},
	})
}

func toContactItem(contact models.Contact) contactItem {
	return contactItem{
		ID:        contact.ID,
		Fullname:  contact.Fullname,
		Mobile:    contact.Mobile,
		Email:     contact.Email,
		Subject:   contact.Subject,
		Message:   contact.Message,
		CreatedAt: contact.CreatedAt,
	}
}
