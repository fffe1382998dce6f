package world

import (
	"github.com/annel0/voxel-engine/internal/meshing"
	"github.com/annel0/voxel-engine/internal/world/block"
	"github.com/google/uuid"
)

// Display - внешняя коллекция отображаемых объектов
type Display interface {
	Attach(p block.Proxy)
	Detach(p block.Proxy)
	AttachMesh(m *meshing.Mesh)
	DetachMesh(m *meshing.Mesh)
}

// Scene - Display в памяти: хранит подключённые прокси и текущую поверхность
type Scene struct {
	proxies  map[uuid.UUID]block.Proxy
	mesh     *meshing.Mesh
	attaches int
	detaches int
}

// NewScene создаёт пустую сцену
func NewScene() *Scene {
	return &Scene{proxies: make(map[uuid.UUID]block.Proxy)}
}

// Attach добавляет прокси в сцену
func (s *Scene) Attach(p block.Proxy) {
	if p == nil {
		return
	}
	s.proxies[p.ID()] = p
	s.attaches++
}

// Detach убирает прокси из сцены
func (s *Scene) Detach(p block.Proxy) {
	if p == nil {
		return
	}
	if _, ok := s.proxies[p.ID()]; ok {
		delete(s.proxies, p.ID())
		s.detaches++
	}
}

// AttachMesh делает m текущей поверхностью
func (s *Scene) AttachMesh(m *meshing.Mesh) {
	s.mesh = m
}

// DetachMesh убирает m, если она текущая
func (s *Scene) DetachMesh(m *meshing.Mesh) {
	if s.mesh == m {
		s.mesh = nil
	}
}

// Len возвращает число подключённых прокси
func (s *Scene) Len() int {
	return len(s.proxies)
}

// Contains сообщает, подключён ли прокси
func (s *Scene) Contains(p block.Proxy) bool {
	if p == nil {
		return false
	}
	_, ok := s.proxies[p.ID()]
	return ok
}

// Mesh возвращает текущую поверхность
func (s *Scene) Mesh() *meshing.Mesh {
	return s.mesh
}

// Stats возвращает число подключений и отключений прокси за всё время
func (s *Scene) Stats() (attaches, detaches int) {
	return s.attaches, s.detaches
}

// nopDisplay используется, когда Display не задан
type nopDisplay struct{}

func (nopDisplay) Attach(block.Proxy)       {}
func (nopDisplay) Detach(block.Proxy)       {}
func (nopDisplay) AttachMesh(*meshing.Mesh) {}
func (nopDisplay) DetachMesh(*meshing.Mesh) {}
