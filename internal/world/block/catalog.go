package block

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Proxy - отображаемый экземпляр одного видимого блока.
// Жизненным циклом прокси управляет сетка.
type Proxy interface {
	ID() uuid.UUID
	BlockID() BlockID
	Position() mgl64.Vec3
}

// Catalog создаёт прокси по типу блока
type Catalog interface {
	// CreateInstance создаёт прокси типа id в центре блока position.
	CreateInstance(id BlockID, position mgl64.Vec3) Proxy

	// CreatePreviewInstance создаёт непозиционированный прокси для интерфейса.
	CreatePreviewInstance(id BlockID) Proxy

	// Has сообщает, известен ли каталогу тип id.
	Has(id BlockID) bool
}

// Instance - стандартная реализация Proxy
type Instance struct {
	handle     uuid.UUID
	descriptor *Descriptor
	position   mgl64.Vec3
	preview    bool
}

func (i *Instance) ID() uuid.UUID           { return i.handle }
func (i *Instance) BlockID() BlockID        { return i.descriptor.ID }
func (i *Instance) Position() mgl64.Vec3    { return i.position }
func (i *Instance) Descriptor() *Descriptor { return i.descriptor }
func (i *Instance) IsPreview() bool         { return i.preview }

// DescriptorCatalog - таблица typeId -> Descriptor, собранная один раз при создании
type DescriptorCatalog struct {
	table []*Descriptor // индекс - BlockID; nil для неизвестных
}

// NewCatalog строит каталог из переданных описаний
func NewCatalog(descriptors ...Descriptor) *DescriptorCatalog {
	var maxID BlockID
	for _, d := range descriptors {
		if d.ID > maxID {
			maxID = d.ID
		}
	}

	table := make([]*Descriptor, int(maxID)+1)
	for _, d := range descriptors {
		if d.ID == AirBlockID {
			continue
		}
		desc := d
		table[d.ID] = &desc
	}
	return &DescriptorCatalog{table: table}
}

// DefaultCatalog строит каталог из всех зарегистрированных блоков
func DefaultCatalog() *DescriptorCatalog {
	return NewCatalog(Registered()...)
}

// Has сообщает, известен ли каталогу тип id
func (c *DescriptorCatalog) Has(id BlockID) bool {
	return c.lookup(id) != nil
}

// Lookup возвращает описание типа id
func (c *DescriptorCatalog) Lookup(id BlockID) (*Descriptor, bool) {
	d := c.lookup(id)
	return d, d != nil
}

func (c *DescriptorCatalog) lookup(id BlockID) *Descriptor {
	if int(id) >= len(c.table) {
		return nil
	}
	return c.table[id]
}

// CreateInstance создаёт прокси; для неизвестного типа возвращает nil
func (c *DescriptorCatalog) CreateInstance(id BlockID, position mgl64.Vec3) Proxy {
	d := c.lookup(id)
	if d == nil {
		return nil
	}
	return &Instance{handle: uuid.New(), descriptor: d, position: position}
}

// CreatePreviewInstance создаёт прокси для отображения в интерфейсе
func (c *DescriptorCatalog) CreatePreviewInstance(id BlockID) Proxy {
	d := c.lookup(id)
	if d == nil {
		return nil
	}
	return &Instance{handle: uuid.New(), descriptor: d, preview: true}
}
