// Package ripeness maps a Brix estimate onto the seven ripeness tiers of a
// Namwa banana.
package ripeness

import "math"

// Tier is one band of the Brix scale. A value belongs to the first tier
// whose Max it does not exceed.
type Tier struct {
	Level  int     `json:"level" yaml:"level"`
	Max    float64 `json:"-" yaml:"max"` // inclusive upper bound, +Inf for the last tier
	Label  string  `json:"label" yaml:"label"`
	Advice string  `json:"advice" yaml:"advice"`
}

// Tiers is ordered by Max and covers the whole real line.
var Tiers = []Tier{
	{
		Level:  1,
		Max:    5.0,
		Label:  "กล้วยน้ำว้าดิบ",
		Advice: "⭐️ กล้วยยังดิบอยู่ มีแป้งสูงมาก ควรบ่มต่อในที่แห้ง มีอากาศถ่ายเท หรือบ่มร่วมกับผลไม้ที่ปล่อยก๊าซเอทิลีน (เช่น แอปเปิล) อาจใช้เวลา 5-7 วันเพื่อให้สุกตามต้องการ",
	},
	{
		Level:  2,
		Max:    8.0,
		Label:  "กล้วยน้ำว้าดิบ (เริ่มอมเหลือง)",
		Advice: "✨ กล้วยยังดิบอยู่แต่เริ่มมีสัญญาณการสุก ควรบ่มต่อประมาณ 3-5 วัน เพื่อให้ได้ความหวานที่เพิ่มขึ้น",
	},
	{
		Level:  3,
		Max:    12.0,
		Label:  "กล้วยน้ำว้าที่เริ่มสุก (เหลืองปนเขียว)",
		Advice: "😊 กล้วยเริ่มสุกแล้ว เนื้อเริ่มนิ่ม รสชาติไม่หวานจัด สามารถรับประทานได้สำหรับผู้ที่ชอบกล้วยไม่หวานมาก หรือบ่มต่อ 2-3 วันให้สุกนิ่มขึ้น",
	},
	{
		Level:  4,
		Max:    18.0,
		Label:  "กล้วยน้ำว้าสุกพอดี (เหลืองทั้งผล)",
		Advice: "😋 กล้วยสุกกำลังดี เนื้อนิ่ม หวานอร่อย เหมาะสำหรับการรับประทานสด หรือนำไปประกอบอาหารที่ไม่ต้องการความหวานมาก",
	},
	{
		Level:  5,
		Max:    22.0,
		Label:  "กล้วยน้ำว้าสุก (มีจุดน้ำตาลเล็กน้อย)",
		Advice: "👌 กล้วยสุกกำลังดีถึงสุกงอมเล็กน้อย เนื้อนิ่ม หวานจัด สามารถรับประทานสด หรือนำไปแปรรูปเป็นกล้วยบวชชี หรือเค้กกล้วยหอมได้เลย",
	},
	{
		Level:  6,
		Max:    25.0,
		Label:  "กล้วยน้ำว้าสุกงอม (มีจุดน้ำตาลมาก)",
		Advice: "😉 กล้วยสุกงอม มีความหวานมาก เนื้อนิ่มมาก อาจมีจุดดำบนเปลือก สามารถนำไปแปรรูปทันที เช่น ทำกล้วยเชื่อม กล้วยฉาบ กล้วยตาก หรือทำขนมหวานได้",
	},
	{
		Level:  7,
		Max:    math.Inf(1),
		Label:  "กล้วยน้ำว้าที่สุกจัดมาก (น้ำตาลเกือบทั้งผล)",
		Advice: "👍 กล้วยสุกจัดมาก เนื้อนิ่มเละ หวานจัด เหมาะสำหรับนำไปแปรรูปทันที เช่น ทำกล้วยบวดชี เค้กกล้วยหอม สมูทตี้ หรือแยม",
	},
}

// TierCount is the number of ripeness levels.
const TierCount = 7
