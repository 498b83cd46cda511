// internal/transport/modbus/client.go
package modbus

import (
	"errors"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

// Registers is the part of modbus.Client the adapter needs.
type Registers interface {
	ReadHoldingRegisters(address, quantity uint16) ([]byte, error)
	ReadInputRegisters(address, quantity uint16) ([]byte, error)
	WriteMultipleRegisters(address, quantity uint16, value []byte) ([]byte, error)
}

// Config is the endpoint the controller's register gateway listens on.
type Config struct {
	Endpoint string
	UnitID   uint8
	Timeout  time.Duration
	Map      MemoryMap
}

// Client is a single TCP connection to one controller gateway.
// It serializes transactions because it mutates SlaveId per transaction.
type Client struct {
	mu      sync.Mutex
	handler *modbus.TCPClientHandler
	regs    Registers
	unitID  uint8
	mm      MemoryMap
}

// Dial connects to cfg.Endpoint.
func Dial(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("transport modbus: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	if err := h.Connect(); err != nil {
		return nil, err
	}

	c := New(modbus.NewClient(h), cfg.UnitID, cfg.Map)
	c.handler = h
	return c, nil
}

// New wraps an already connected register client.
func New(regs Registers, unitID uint8, mm MemoryMap) *Client {
	return &Client{
		regs:   regs,
		unitID: unitID,
		mm:     mm,
	}
}

// Close closes the TCP connection, if Dial opened one.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handler == nil {
		return nil
	}
	return c.handler.Close()
}
