package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brasacombo/storefront-app/middlewares"
	"github.com/brasacombo/storefront-app/models"
	"github.com/brasacombo/storefront-app/store"
	"github.com/brasacombo/storefront-app/utils"
)

type SessionController struct {
	DB    *gorm.DB
	Carts *store.Manager
}

func NewSessionController(db *gorm.DB, carts *store.Manager) *SessionController {
	return &SessionController{DB: db, Carts: carts}
}

// CreateSession -> opens an anonymous browsing session and returns its token
func (sc *SessionController) CreateSession(c *gin.Context) {
	sessionKey := uuid.NewString()

	session := models.Session{
		SessionKey: sessionKey,
		Status:     "active",
	}
	if err := sc.DB.Create(&session).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	token, err := utils.GenerateSessionToken(sessionKey)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("session %s created", sessionKey)

	utils.RespondJSON(c, http.StatusCreated, "Sessão criada", gin.H{
		"token":       token,
		"session_key": sessionKey,
	})
}

// EndSession -> closes the session: clears the cart and discards its order
// snapshots (the transient storage does not outlive the browsing session)
func (sc *SessionController) EndSession(c *gin.Context) {
	sessionKey := middlewares.SessionKey(c)

	sc.Carts.Drop(sessionKey)

	if err := sc.DB.Delete(&models.OrderSnapshot{}, "session_key = ?", sessionKey).Error; err != nil {
		utils.ErrorLogger.Printf("session %s: discard order snapshots: %v", sessionKey, err)
	}
	if err := sc.DB.Model(&models.Session{}).
		Where("session_key = ?", sessionKey).
		Update("status", "finished").Error; err != nil {
		utils.ErrorLogger.Printf("session %s: mark finished: %v", sessionKey, err)
	}

	utils.RespondJSON(c, http.StatusOK, "Sessão encerrada", nil)
}
