package events

import "testing"

func TestNormalizeNote_PassThrough(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"estado general bueno", "estado general bueno"},
		{"  con espacios  ", "con espacios"},
		// Solo el prefijo exacto dispara la limpieza.
		{"nota que menciona backfill", "nota que menciona backfill"},
	}
	for _, c := range cases {
		if got := NormalizeNote(c.in, EventTypeMating); got != c.want {
			t.Fatalf("NormalizeNote(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeNote_BackfillWithoutRawIsDropped(t *testing.T) {
	if got := NormalizeNote("backfill:description", EventTypeEgg); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := NormalizeNote("backfill:description;source=legacy", EventTypeEgg); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestNormalizeNote_Mating(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		// Fecha + palabra del evento + código de macho: queda solo el resto.
		{"backfill:description;raw=2024.3.5 交配XT-D公配种顺利", "配种顺利"},
		{"backfill:description;raw=2024/3/5 配对 XT-D 状态好", "状态好"},
		// Macho de una letra con sufijo 公.
		{"backfill:description;raw=3.5 配D公", ""},
		// Sin fecha también recorta.
		{"backfill:description;raw=交配BL-2", ""},
	}
	for _, c := range cases {
		if got := NormalizeNote(c.in, EventTypeMating); got != c.want {
			t.Fatalf("mating NormalizeNote(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeNote_Egg(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"backfill:description;raw=2024.4.1 产蛋3个", ""},
		{"backfill:description;raw=4-1 下蛋 2 枚 全部受精", "全部受精"},
		{"backfill:description;raw=产卵5颗蛋", ""},
		// Cantidad sin unidad.
		{"backfill:description;raw=下 4", ""},
	}
	for _, c := range cases {
		if got := NormalizeNote(c.in, EventTypeEgg); got != c.want {
			t.Fatalf("egg NormalizeNote(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeNote_ChangeMate(t *testing.T) {
	// Para change_mate solo se recorta la palabra; los códigos viejos/nuevos
	// los muestra la UI desde los campos estructurados.
	if got := NormalizeNote("backfill:description;raw=2024.6.1 换公XT-B", EventTypeChangeMate); got != "XT-B" {
		t.Fatalf("got %q", got)
	}
	if got := NormalizeNote("backfill:description;raw=换公", EventTypeChangeMate); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestNormalizeNote_KeywordsAreTypeScoped(t *testing.T) {
	// Una nota de puesta no pierde texto por reglas de mating.
	in := "backfill:description;raw=2024.3.5 交配记录存档"
	if got := NormalizeNote(in, EventTypeEgg); got != "交配记录存档" {
		t.Fatalf("egg rules must not strip mating words, got %q", got)
	}
}
