// Package mcp exposes the room store as MCP tools over stdio, so a local
// assistant can read and update rooms through the same operations as the CLI.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"roomledger/internal/billing"
	"roomledger/internal/filter"
	"roomledger/internal/logging"
	"roomledger/internal/room"
	"roomledger/internal/store"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Options configures a Server.
type Options struct {
	Version  string
	FlatRate int
}

// Server wraps the MCP SDK server around a room store.
type Server struct {
	MCPServer *sdkmcp.Server

	store *store.Store
	rate  int
	log   *slog.Logger
}

// NewServer creates an MCP server with the room tools registered.
func NewServer(st *store.Store, opts Options) *Server {
	if opts.Version == "" {
		opts.Version = "dev"
	}
	s := &Server{store: st, rate: opts.FlatRate, log: logging.New("mcp")}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "roomledger", Version: opts.Version},
		nil,
	)
	s.registerTools()
	return s
}

// Run serves MCP over t until the client disconnects or ctx is canceled.
func (s *Server) Run(ctx context.Context, t sdkmcp.Transport) error {
	return s.MCPServer.Run(ctx, t)
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_rooms",
		Description: "List rooms in stored order. Optional 'where' is a boolean expression over room_id, holder_name, rent, light_units, occupied, vacant, reminders.",
	}, s.handleListRooms)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_room",
		Description: "Get one room by id, including its reminders.",
	}, s.handleGetRoom)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "add_room",
		Description: "Add a room. The id is chosen by the caller and must be unused. Rooms start occupied unless occupied=false.",
	}, s.handleAddRoom)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "update_room",
		Description: "Change holder name, rent, light units or occupancy of a room. Omitted fields keep their value.",
	}, s.handleUpdateRoom)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "add_reminder",
		Description: "Append a text reminder to a room.",
	}, s.handleAddReminder)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "delete_room",
		Description: "Remove a room permanently.",
	}, s.handleDeleteRoom)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "room_bill",
		Description: "Rent, light bill and total bill for one room at the configured flat rate.",
	}, s.handleRoomBill)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "billing_summary",
		Description: "Bill statement for every room plus totals.",
	}, s.handleBillingSummary)
}

// --- Tool input/output types ---

type listRoomsInput struct {
	Where string `json:"where,omitempty" jsonschema:"filter expression, e.g. vacant && rent < 5000"`
}

type listRoomsOutput struct {
	Rooms []room.Room `json:"rooms"`
	Count int         `json:"count"`
}

type roomIDInput struct {
	RoomID int `json:"room_id" jsonschema:"room id"`
}

type roomOutput struct {
	Room room.Room `json:"room"`
}

type addRoomInput struct {
	RoomID     int    `json:"room_id" jsonschema:"new, unused room id"`
	HolderName string `json:"holder_name,omitempty" jsonschema:"name of the person renting the room"`
	Rent       int    `json:"rent" jsonschema:"monthly rent in whole currency units"`
	LightUnits int    `json:"light_units,omitempty" jsonschema:"electricity units used (default 0)"`
	Occupied   *bool  `json:"occupied,omitempty" jsonschema:"whether the room is occupied (default true)"`
}

type updateRoomInput struct {
	RoomID     int     `json:"room_id" jsonschema:"room id"`
	HolderName *string `json:"holder_name,omitempty" jsonschema:"new holder name"`
	Rent       *int    `json:"rent,omitempty" jsonschema:"new rent"`
	LightUnits *int    `json:"light_units,omitempty" jsonschema:"new electricity units"`
	Occupied   *bool   `json:"occupied,omitempty" jsonschema:"new occupancy"`
}

type addReminderInput struct {
	RoomID int    `json:"room_id" jsonschema:"room id"`
	Text   string `json:"text" jsonschema:"reminder text"`
}

type deleteRoomOutput struct {
	OK     string `json:"ok"`
	RoomID int    `json:"room_id"`
}

type billingSummaryInput struct{}

type billingSummaryOutput struct {
	FlatRate   int                 `json:"flat_rate"`
	Statements []billing.Statement `json:"statements"`
	Summary    billing.Summary     `json:"summary"`
}

// --- Tool handlers ---

func (s *Server) handleListRooms(_ context.Context, _ *sdkmcp.CallToolRequest, input listRoomsInput) (*sdkmcp.CallToolResult, listRoomsOutput, error) {
	f, err := filter.Compile(input.Where)
	if err != nil {
		return nil, listRoomsOutput{}, err
	}
	rooms, err := s.store.List()
	if err != nil {
		return nil, listRoomsOutput{}, s.toolError("list_rooms", err)
	}
	rooms, err = f.Apply(rooms)
	if err != nil {
		return nil, listRoomsOutput{}, err
	}
	return nil, listRoomsOutput{Rooms: rooms, Count: len(rooms)}, nil
}

func (s *Server) handleGetRoom(_ context.Context, _ *sdkmcp.CallToolRequest, input roomIDInput) (*sdkmcp.CallToolResult, roomOutput, error) {
	r, err := s.find(input.RoomID)
	if err != nil {
		return nil, roomOutput{}, s.toolError("get_room", err)
	}
	return nil, roomOutput{Room: *r}, nil
}

func (s *Server) handleAddRoom(_ context.Context, _ *sdkmcp.CallToolRequest, input addRoomInput) (*sdkmcp.CallToolResult, roomOutput, error) {
	if err := nonNegative("rent", input.Rent); err != nil {
		return nil, roomOutput{}, err
	}
	if err := nonNegative("light_units", input.LightUnits); err != nil {
		return nil, roomOutput{}, err
	}
	occupied := true
	if input.Occupied != nil {
		occupied = *input.Occupied
	}
	r := room.Room{
		ID:         input.RoomID,
		HolderName: input.HolderName,
		Rent:       input.Rent,
		LightUnits: input.LightUnits,
		Occupied:   occupied,
		Reminders:  []string{},
	}
	if err := s.store.AddRoom(r); err != nil {
		return nil, roomOutput{}, s.toolError("add_room", err)
	}
	return nil, roomOutput{Room: r}, nil
}

func (s *Server) handleUpdateRoom(_ context.Context, _ *sdkmcp.CallToolRequest, input updateRoomInput) (*sdkmcp.CallToolResult, roomOutput, error) {
	p := room.Patch{
		HolderName: input.HolderName,
		Rent:       input.Rent,
		LightUnits: input.LightUnits,
		Occupied:   input.Occupied,
	}
	if p.Empty() {
		return nil, roomOutput{}, errors.New("update_room: nothing to change")
	}
	if p.Rent != nil {
		if err := nonNegative("rent", *p.Rent); err != nil {
			return nil, roomOutput{}, err
		}
	}
	if p.LightUnits != nil {
		if err := nonNegative("light_units", *p.LightUnits); err != nil {
			return nil, roomOutput{}, err
		}
	}
	r, err := s.store.UpdateRoom(input.RoomID, p)
	if err != nil {
		return nil, roomOutput{}, s.toolError("update_room", err)
	}
	return nil, roomOutput{Room: r}, nil
}

func (s *Server) handleAddReminder(_ context.Context, _ *sdkmcp.CallToolRequest, input addReminderInput) (*sdkmcp.CallToolResult, roomOutput, error) {
	r, err := s.store.AppendReminder(input.RoomID, input.Text)
	if err != nil {
		return nil, roomOutput{}, s.toolError("add_reminder", err)
	}
	return nil, roomOutput{Room: r}, nil
}

func (s *Server) handleDeleteRoom(_ context.Context, _ *sdkmcp.CallToolRequest, input roomIDInput) (*sdkmcp.CallToolResult, deleteRoomOutput, error) {
	if err := s.store.DeleteRoom(input.RoomID); err != nil {
		return nil, deleteRoomOutput{}, s.toolError("delete_room", err)
	}
	return nil, deleteRoomOutput{OK: "room deleted", RoomID: input.RoomID}, nil
}

func (s *Server) handleRoomBill(_ context.Context, _ *sdkmcp.CallToolRequest, input roomIDInput) (*sdkmcp.CallToolResult, billing.Statement, error) {
	r, err := s.find(input.RoomID)
	if err != nil {
		return nil, billing.Statement{}, s.toolError("room_bill", err)
	}
	return nil, billing.For(*r, s.rate), nil
}

func (s *Server) handleBillingSummary(_ context.Context, _ *sdkmcp.CallToolRequest, _ billingSummaryInput) (*sdkmcp.CallToolResult, billingSummaryOutput, error) {
	rooms, err := s.store.List()
	if err != nil {
		return nil, billingSummaryOutput{}, s.toolError("billing_summary", err)
	}
	stmts := billing.Statements(rooms, s.rate)
	return nil, billingSummaryOutput{
		FlatRate:   s.rate,
		Statements: stmts,
		Summary:    billing.Summarize(stmts),
	}, nil
}

func (s *Server) find(id int) (*room.Room, error) {
	r, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, &store.NotFoundError{ID: id}
	}
	return r, nil
}

// toolError logs storage failures; business outcomes pass through quietly.
func (s *Server) toolError(tool string, err error) error {
	if errors.Is(err, store.ErrStorageRead) || errors.Is(err, store.ErrStorageWrite) {
		s.log.Error("tool failed", "tool", tool, "error", err)
	} else {
		s.log.Debug("tool rejected", "tool", tool, "error", err)
	}
	return fmt.Errorf("%s: %w", tool, err)
}

func nonNegative(field string, v int) error {
	if v < 0 {
		return fmt.Errorf("%s must not be negative, got %d", field, v)
	}
	return nil
}
