package block

// uniform описывает блок с одной текстурой на всех гранях
func uniform(id BlockID, name string, shiny bool, texture string) Descriptor {
	return Descriptor{
		ID:       id,
		Name:     name,
		Shiny:    shiny,
		Textures: [6]string{texture, texture, texture, texture, texture, texture},
	}
}

// Регистрируем стандартные типы блоков при импорте пакета
func init() {
	Register(Descriptor{
		ID:       GrassBlockID,
		Name:     "Grass",
		Textures: [6]string{"grass_side", "grass_side", "grass", "dirt", "grass_side", "grass_side"},
	})
	Register(uniform(DirtBlockID, "Dirt", false, "dirt"))
	Register(uniform(StoneBlockID, "Stone", false, "stone"))
	Register(Descriptor{
		ID:       LogBlockID,
		Name:     "Log",
		Textures: [6]string{"log", "log", "log_top", "log_top", "log", "log"},
	})
	Register(uniform(LeavesBlockID, "Leaves", false, "leaves"))
	Register(uniform(PlankBlockID, "Plank", false, "plank"))
	Register(uniform(CobblestoneBlockID, "Cobblestone", false, "cobblestone"))
	Register(uniform(BricksBlockID, "Bricks", false, "bricks"))
	Register(uniform(IronBlockID, "Iron", true, "iron"))
	Register(uniform(GoldBlockID, "Gold", true, "gold"))
}
