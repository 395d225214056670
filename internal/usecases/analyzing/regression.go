package analyzing

// Point é uma observação (x, y) usada no ajuste linear
type Point struct {
	X float64
	Y float64
}

// LinearModel é a reta y = Intercept + Slope*x
type LinearModel struct {
	Intercept float64
	Slope     float64
}

// Predict avalia a reta em x
func (m LinearModel) Predict(x float64) float64 {
	return m.Intercept + m.Slope*x
}

// Fit ajusta uma reta por mínimos quadrados ordinários com uma única variável.
// Retorna false quando o ajuste não é possível: menos de dois pontos ou todos com o mesmo x.
func Fit(points []Point) (LinearModel, bool) {
	if len(points) < 2 {
		return LinearModel{}, false
	}

	n := float64(len(points))
	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	meanX, meanY := sumX/n, sumY/n

	var sxx, sxy float64
	for _, p := range points {
		dx := p.X - meanX
		sxx += dx * dx
		sxy += dx * (p.Y - meanY)
	}

	if sxx == 0 {
		return LinearModel{}, false
	}

	slope := sxy / sxx
	return LinearModel{
		Intercept: meanY - slope*meanX,
		Slope:     slope,
	}, true
}
