package block

import "sort"

// BlockID представляет идентификатор типа блока. 0 зарезервирован за пустотой.
type BlockID uint16

// Константы ID блоков
const (
	AirBlockID         BlockID = iota // 0 - пустая ячейка
	GrassBlockID                      // 1
	DirtBlockID                       // 2
	StoneBlockID                      // 3
	LogBlockID                        // 4
	LeavesBlockID                     // 5
	PlankBlockID                      // 6
	CobblestoneBlockID                // 7
	BricksBlockID                     // 8
	IronBlockID                       // 9
	GoldBlockID                       // 10
)

// Face - индекс грани блока в порядке +x, -x, +y, -y, +z, -z
type Face int

const (
	FaceRight Face = iota
	FaceLeft
	FaceTop
	FaceBottom
	FaceFront
	FaceBack
)

// Descriptor описывает внешний вид типа блока
type Descriptor struct {
	ID       BlockID
	Name     string
	Shiny    bool      // глянцевый материал (металлы)
	Textures [6]string // текстура каждой грани, индекс - Face
}

// Texture возвращает имя текстуры для грани
func (d *Descriptor) Texture(f Face) string {
	if f < 0 || int(f) >= len(d.Textures) {
		return ""
	}
	return d.Textures[f]
}

var registry = make(map[BlockID]*Descriptor)

// Register добавляет описание блока в регистр. ID 0 не регистрируется.
func Register(d Descriptor) {
	if d.ID == AirBlockID {
		return
	}
	desc := d
	registry[d.ID] = &desc
}

// Get возвращает описание для указанного ID
func Get(id BlockID) (*Descriptor, bool) {
	d, exists := registry[id]
	return d, exists
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}

// Registered возвращает описания всех зарегистрированных блоков по возрастанию ID
func Registered() []Descriptor {
	out := make([]Descriptor, 0, len(registry))
	for _, d := range registry {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
