package ops

import (
	"math"

	"github.com/gopict/pict/color"
	"github.com/gopict/pict/pixel"
)

// temperatureTable holds CIE x,y chromaticities for black body
// temperatures from 1000K to 12000K in 1000K steps.
var temperatureTable = [12][2]float64{
	{0.652750055750174, 0.344462227197370},
	{0.526676280311873, 0.413297274507630},
	{0.436929833678155, 0.404073616886221},
	{0.380438429420364, 0.376746069841299},
	{0.345100160725069, 0.351607005318840},
	{0.322082269887888, 0.331752126277376},
	{0.306372718718652, 0.316511125739794},
	{0.295186142428596, 0.304763622626521},
	{0.286924765725065, 0.295581717193809},
	{0.280632719756407, 0.288286029784579},
	{0.275714062105148, 0.282393589935205},
	{0.271782994107569, 0.277561259748537},
}

// kelvinToRGB converts a black body temperature, clamped to the table
// range, into linear RGB via XYZ.
func kelvinToRGB(temperature float32) color.RGB {
	t := int(temperature)
	if t < 1000 {
		t = 1000
	} else if t > 12000 {
		t = 12000
	}

	i := t / 1000

	x := temperatureTable[i-1][0]
	y := temperatureTable[i-1][1]

	floorTemp := float64(i * 1000)
	ft := float64(t)

	if math.Abs(ft-floorTemp) > 1.0 {
		x2 := temperatureTable[i][0]
		y2 := temperatureTable[i][1]
		f := (ft - floorTemp) / 1000.0

		x = x*(1.0-f) + x2*f
		y = y*(1.0-f) + y2*f
	}

	z := 1.0 - x - y
	s := 1.0 / y

	return color.XYZ{Data: [4]float32{
		float32(x * s),
		float32(y * s),
		float32(z * s),
		1.0,
	}}.ToRGB()
}

func temperatureFactors(origTemp, newTemp float32) [3]float32 {
	orig := kelvinToRGB(origTemp)
	next := kelvinToRGB(newTemp)

	return [3]float32{
		orig.Data[0] / next.Data[0],
		orig.Data[1] / next.Data[1],
		orig.Data[2] / next.Data[2],
	}
}

// tintPow derives a gamma exponent from an average channel imbalance.
// Non-positive imbalances return 0, meaning no correction.
func tintPow(avg float32) float32 {
	if avg > 0.0 {
		return 1.0 / (1.0 - float32(math.Tanh(float64(avg))))
	}
	return 0.0
}

func greenTintPow(b *pixel.Buffer[color.RGB], tintCorrection float32) float32 {
	if tintCorrection <= 0.0 {
		return 0.0
	}

	var sum float32
	for _, c := range b.Data() {
		sum += c.Green() - c.Red() + c.Green() - c.Blue()
	}

	return tintPow(sum * tintCorrection / float32(len(b.Data())))
}

func redTintPow(b *pixel.Buffer[color.RGB], tintCorrection float32) float32 {
	if tintCorrection <= 0.0 {
		return 0.0
	}

	var sum float32
	for _, c := range b.Data() {
		sum += c.Red() - c.Green() + c.Red() - c.Blue()
	}

	return tintPow(0.25 * sum * tintCorrection / float32(len(b.Data())))
}

func blueTintPow(b *pixel.Buffer[color.RGB], tintCorrection float32) float32 {
	if tintCorrection <= 0.0 {
		return 0.0
	}

	var sum float32
	for _, c := range b.Data() {
		sum += c.Blue() - c.Green() + c.Blue() - c.Red()
	}

	return tintPow(0.33 * sum * tintCorrection / float32(len(b.Data())))
}

// ChangeColorTemperature reinterprets the buffer as lit by newTemp
// instead of origTemp, both in kelvin. A positive tintCorrection also
// compensates green, red, and blue casts derived from the buffer's
// channel averages.
func ChangeColorTemperature(b *pixel.Buffer[color.RGB], origTemp, newTemp, tintCorrection float32) *pixel.Buffer[color.RGB] {
	factors := temperatureFactors(origTemp, newTemp)

	greenPow := float32(0.0)
	if tintCorrection > 0.0 {
		greenPow = greenTintPow(b, tintCorrection)
		if greenPow < 0.0 {
			greenPow = 0.0
		}
	}

	var res *pixel.Buffer[color.RGB]
	if greenPow > 0.0 {
		res = b.MapColors(func(c color.RGB) color.RGB {
			return color.NewRGBWithAlpha(
				c.Red()*factors[0],
				pow32(c.Green(), greenPow)*factors[1],
				c.Blue()*factors[2],
				c.Alpha(),
			)
		})
	} else {
		res = b.MapColors(func(c color.RGB) color.RGB {
			return color.NewRGBWithAlpha(
				c.Red()*factors[0],
				c.Green()*factors[1],
				c.Blue()*factors[2],
				c.Alpha(),
			)
		})
	}

	redPow := redTintPow(b, tintCorrection)
	bluePow := blueTintPow(b, tintCorrection)

	if redPow > 0.0 {
		res.Mod(func(c color.RGB) color.RGB {
			return c.WithRed(pow32(c.Red(), redPow))
		})
	}
	if bluePow > 0.0 {
		res.Mod(func(c color.RGB) color.RGB {
			return c.WithBlue(pow32(c.Blue(), bluePow))
		})
	}

	return res
}

// OptimizeColorTemperature estimates a color cast from the average
// red/blue imbalance and shifts the temperature away from 6500K to
// correct it. Factor scales the maximum shift.
func OptimizeColorTemperature(b *pixel.Buffer[color.RGB], factor, tintCorrection float32) *pixel.Buffer[color.RGB] {
	var sum float64
	for _, c := range b.Data() {
		sum += float64(c.Red()) - float64(c.Blue())
	}

	avg := sum / float64(len(b.Data()))
	newTemp := float32(6500.0 - math.Tanh(avg)*float64(factor)*4000.0)

	return ChangeColorTemperature(b, 6500.0, newTemp, tintCorrection)
}

func pow32(v, p float32) float32 {
	return float32(math.Pow(float64(v), float64(p)))
}
