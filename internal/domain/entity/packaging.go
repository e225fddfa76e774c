package entity

// PackagingLevel es un nivel de empaque de compra/venta por encima de la unidad
// canónica (tableta, cápsula, frasco). La unidad siempre existe; los demás
// niveles son opcionales por producto.
type PackagingLevel string

const (
	LevelUnit    PackagingLevel = "UNIDAD"
	LevelBlister PackagingLevel = "BLISTER"
	LevelBox     PackagingLevel = "CAJA"
	LevelPack    PackagingLevel = "PAQUETE"
)

// ValidLevel indica si el string corresponde a un nivel de empaque conocido.
func ValidLevel(level PackagingLevel) bool {
	switch level {
	case LevelUnit, LevelBlister, LevelBox, LevelPack:
		return true
	}
	return false
}

// PackagingTable mapea nivel de empaque → unidades canónicas por empaque.
// Mapeo disperso: un nivel ausente significa que ese empaque no aplica al
// producto. LevelUnit nunca se guarda; su ratio es siempre 1.
type PackagingTable map[PackagingLevel]int64

// UnitsPer devuelve el ratio de conversión del nivel dado. Para LevelUnit
// retorna siempre (1, true). Para los demás niveles, (ratio, true) solo si el
// nivel está definido con ratio positivo.
func (t PackagingTable) UnitsPer(level PackagingLevel) (int64, bool) {
	if level == LevelUnit {
		return 1, true
	}
	ratio, ok := t[level]
	if !ok || ratio <= 0 {
		return 0, false
	}
	return ratio, true
}

// Levels devuelve los niveles definidos en orden estable (blister, caja, paquete).
func (t PackagingTable) Levels() []PackagingLevel {
	ordered := []PackagingLevel{LevelBlister, LevelBox, LevelPack}
	out := make([]PackagingLevel, 0, len(t))
	for _, lvl := range ordered {
		if _, ok := t.UnitsPer(lvl); ok {
			out = append(out, lvl)
		}
	}
	return out
}
