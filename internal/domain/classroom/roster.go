package classroom

import (
	"fmt"

	"aulagen/internal/domain/world"
)

// SeedStudents returns the opening class roster.
func SeedStudents() []Student {
	return []Student{
		{
			ID:             "s1",
			Name:           "Mateo",
			Personality:    "Extrovertido y bromista. Siempre busca hacer reír a los demás, incluso en medio de clase. Se distrae con facilidad.",
			CurrentStatus:  "Sentado, buscando a quién contarle un chiste.",
			CurrentThought: "¿Cómo se dice espejo en chino? \"Aitoiyo\".",
			Color:          "bg-blue-500",
			Memories:       []string{"Llegó a clase con ganas de fiesta"},
			Position:       world.Point{X: 6, Y: 6},
			Facing:         world.FacingBack,
		},
		{
			ID:             "s2",
			Name:           "Sofía",
			Personality:    "Responsable y perfeccionista. Delegada de la clase. Le gusta que todo esté en orden y sigue las reglas al pie de la letra.",
			CurrentStatus:  "Revisando que todos tengan sus materiales.",
			CurrentThought: "Espero que hoy no haya mucho caos.",
			Color:          "bg-green-500",
			Memories:       []string{"Anotó la tarea en su agenda"},
			Position:       world.Point{X: 8, Y: 6},
			Facing:         world.FacingBack,
		},
		{
			ID:             "s3",
			Name:           "Carlos",
			Personality:    "Tímido y observador. Le apasionan los videojuegos y la tecnología. Prefiere escuchar que hablar.",
			CurrentStatus:  "Mirando su cuaderno de dibujos.",
			CurrentThought: "Ojalá pudiera programar un mod para esto.",
			Color:          "bg-red-500",
			Memories:       []string{"Evitó el contacto visual al entrar"},
			Position:       world.Point{X: 12, Y: 6},
			Facing:         world.FacingBack,
		},
		{
			ID:             "s4",
			Name:           "Ana",
			Personality:    "Atlética y competitiva. No puede estar mucho tiempo sentada. Tiene mucha energía y siempre quiere moverse.",
			CurrentStatus:  "Moviendo la pierna nerviosamente.",
			CurrentThought: "¿Cuánto falta para gimnasia?",
			Color:          "bg-yellow-500",
			Memories:       []string{"Subió las escaleras corriendo"},
			Position:       world.Point{X: 14, Y: 6},
			Facing:         world.FacingBack,
		},
		{
			ID:             "s5",
			Name:           "Lucía",
			Personality:    "Artista y soñadora. Se pierde en sus pensamientos. Siempre tiene un lápiz en la mano dibujando en los márgenes.",
			CurrentStatus:  "Mirando por la ventana pensativa.",
			CurrentThought: "Esa nube parece un dragón comiendo pizza.",
			Color:          "bg-pink-500",
			Memories:       []string{"Encontró una piedra brillante en el patio"},
			Position:       world.Point{X: 18, Y: 4},
			Facing:         world.FacingRight,
		},
		{
			ID:             "s6",
			Name:           "Hugo",
			Personality:    "Curioso y analítico. Le encanta la ciencia. Siempre pregunta \"¿por qué?\" a todo lo que dice el profesor.",
			CurrentStatus:  "Cerca de la pizarra examinando una tiza.",
			CurrentThought: "Si la tiza es calcio, ¿por qué no sabe a leche?",
			Color:          "bg-purple-500",
			Memories:       []string{"Leyó un dato sobre hormigas esta mañana"},
			Position:       world.Point{X: 7, Y: 1},
			Facing:         world.FacingFront,
		},
		{
			ID:             "s7",
			Name:           "Elena",
			Personality:    "Social y carismática. Conoce todos los cotilleos. Le encanta organizar eventos y juntar a la gente.",
			CurrentStatus:  "Caminando hacia el pupitre de Sofía.",
			CurrentThought: "Tengo que contarle a Sofía lo que pasó en el recreo de ayer.",
			Color:          "bg-orange-500",
			Memories:       []string{"Habló con tres personas antes de entrar"},
			Position:       world.Point{X: 9, Y: 8},
			Facing:         world.FacingLeft,
		},
		{
			ID:             "s8",
			Name:           "Bruno",
			Personality:    "Tranquilo y bondadoso. Le gusta leer y ayudar a los demás. Es el mediador cuando hay conflictos.",
			CurrentStatus:  "En el librero buscando algo nuevo.",
			CurrentThought: "Este libro de historia parece interesante.",
			Color:          "bg-indigo-500",
			Memories:       []string{"Le prestó un borrador a Mateo"},
			Position:       world.Point{X: 1, Y: 2},
			Facing:         world.FacingBack,
		},
		{
			ID:             "s9",
			Name:           "Valentina",
			Personality:    "Directa y ambiciosa. Quiere ser la mejor en todo. No tiene miedo de decir lo que piensa.",
			CurrentStatus:  "Sentada rígidamente esperando instrucciones.",
			CurrentThought: "Voy a sacar la nota más alta del examen.",
			Color:          "bg-red-700",
			Memories:       []string{"Repasó tres veces el tema anoche"},
			Position:       world.Point{X: 12, Y: 8},
			Facing:         world.FacingBack,
		},
		{
			ID:             "s10",
			Name:           "Diego",
			Personality:    "Creativo y un poco desordenado. Siempre tararea canciones. Le cuesta seguir el ritmo de la clase porque vive en su propio mundo musical.",
			CurrentStatus:  "Tarareando una melodía mientras ordena su mochila.",
			CurrentThought: "Do-re-mi... esa nota no encaja.",
			Color:          "bg-teal-500",
			Memories:       []string{"Perdió su lápiz azul, otra vez"},
			Position:       world.Point{X: 14, Y: 10},
			Facing:         world.FacingFront,
		},
	}
}

// SeatSeeds fits a roster to g. Students whose seat is walkable and free keep
// it; the rest take the first vacant walkable tile in row-major order.
func SeatSeeds(g *world.Grid, students []Student) ([]Student, error) {
	out := make([]Student, len(students))
	taken := make(map[world.Point]bool, len(students))
	var displaced []int
	for i, s := range students {
		out[i] = s.Clone()
		if g.WalkableAt(s.Position) && !taken[s.Position] {
			taken[s.Position] = true
			continue
		}
		displaced = append(displaced, i)
	}
	for _, i := range displaced {
		p, ok := g.FirstWalkable(func(p world.Point) bool { return taken[p] })
		if !ok {
			return nil, fmt.Errorf("%w: cannot seat %s", ErrNoVacantTile, out[i].Name)
		}
		out[i].Position = p
		taken[p] = true
	}
	return out, nil
}
