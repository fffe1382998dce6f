package physics

import "math"

// Tuning содержит константы движения аватара в мировых единицах
type Tuning struct {
	Gravity            float64 // ускорение свободного падения
	GroundAcceleration float64 // горизонтальное ускорение на земле
	AirAcceleration    float64 // горизонтальное ускорение в воздухе
	TopSpeed           float64 // предельная горизонтальная скорость
	JumpImpulse        float64 // вертикальная скорость в начале прыжка
	Width              float64 // ширина следа аватара
	Height             float64 // высота аватара от ног до глаз
	ProbeEpsilon       float64 // отступ лучей пола от углов следа
	ProbeRadius        int     // радиус поиска блоков под ногами, в ячейках
}

// DefaultTuning возвращает константы для блока с ребром blockSize
func DefaultTuning(blockSize float64) Tuning {
	return Tuning{
		Gravity:            25 * blockSize,
		GroundAcceleration: 40 * blockSize,
		AirAcceleration:    10 * blockSize,
		TopSpeed:           5 * blockSize,
		JumpImpulse:        9 * blockSize,
		Width:              0.6 * blockSize,
		Height:             1.8 * blockSize,
		ProbeEpsilon:       0.001 * blockSize,
		ProbeRadius:        MinProbeRadius(1.8*blockSize, blockSize),
	}
}

// MinProbeRadius возвращает наименьший радиус поиска, при котором блок пола
// под ногами аватара высотой height попадает в окрестность клетки глаз
func MinProbeRadius(height, blockSize float64) int {
	return int(math.Floor(height/blockSize)) + 1
}
