package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hostel-backend/services"
	"hostel-backend/utils"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

// ----------------------------------------------------
// 1. List Rooms (GET /api/rooms)
// ----------------------------------------------------

func (rc *RoomController) GetRooms(c *gin.Context) {
	filter := services.RoomFilter{
		HostelName: strings.TrimSpace(c.Query("hostelName")),
	}

	if raw := c.Query("capacity"); raw != "" {
		if capacity, err := strconv.Atoi(raw); err == nil {
			filter.Capacity = &capacity
		}
	}
	if raw := c.Query("available"); raw != "" {
		available := raw == "true"
		filter.Available = &available
	}
	if raw := c.Query("minPrice"); raw != "" {
		if minPrice, err := strconv.Atoi(raw); err == nil {
			filter.MinPrice = &minPrice
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if maxPrice, err := strconv.Atoi(raw); err == nil {
			filter.MaxPrice = &maxPrice
		}
	}

	rooms, err := rc.Rooms.List(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// 2. Featured Rooms (GET /api/rooms/featured)
// ----------------------------------------------------

func (rc *RoomController) GetFeaturedRooms(c *gin.Context) {
	rooms, err := rc.Rooms.Featured()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// 3. Room Detail (GET /api/rooms/:id)
// ----------------------------------------------------

func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}

	room, err := rc.Rooms.GetByID(uint(id))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}
