package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/laundry-app/board"
	"github.com/yeremiapane/laundry-app/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// BoardController upgrades staff and owner screens to the booking event feed.
type BoardController struct {
	Hub *board.Hub
}

func NewBoardController(hub *board.Hub) *BoardController {
	return &BoardController{Hub: hub}
}

// HandleWebSocket keeps the connection registered until the client goes away.
// Incoming messages are read and discarded.
func (bc *BoardController) HandleWebSocket(c *gin.Context) {
	role := c.GetString("role")
	if role == "" {
		role = c.DefaultQuery("role", "staff")
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Errorf("board upgrade: %v", err)
		return
	}

	bc.Hub.Register(ws, role)
	defer bc.Hub.Unregister(ws)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}
}
