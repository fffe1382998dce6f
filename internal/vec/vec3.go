package vec

// Vec3 представляет целочисленные индексы ячейки сетки
type Vec3 struct {
	X int
	Y int
	Z int
}

// Axes - шесть единичных смещений вдоль осей в фиксированном порядке.
// Порядок обхода соседей определяется этой таблицей.
var Axes = [6]Vec3{
	{X: -1}, {X: 1},
	{Y: -1}, {Y: 1},
	{Z: -1}, {Z: 1},
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub вычитает вектор
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Up возвращает индексы ячейки над текущей
func (v Vec3) Up() Vec3 {
	return Vec3{X: v.X, Y: v.Y + 1, Z: v.Z}
}

// Down возвращает индексы ячейки под текущей
func (v Vec3) Down() Vec3 {
	return Vec3{X: v.X, Y: v.Y - 1, Z: v.Z}
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// ChebyshevTo возвращает расстояние Чебышёва до другого вектора
func (v Vec3) ChebyshevTo(other Vec3) int {
	d := abs(v.X - other.X)
	if dy := abs(v.Y - other.Y); dy > d {
		d = dy
	}
	if dz := abs(v.Z - other.Z); dz > d {
		d = dz
	}
	return d
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
