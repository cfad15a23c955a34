package oracle

import (
	"fmt"
	"strings"

	"aulagen/internal/domain/classroom"
	"aulagen/internal/domain/world"
)

const systemSpeaker = "SISTEMA"

const freeRunInstruction = `SIMULACIÓN LIBRE: Los alumnos deben actuar de forma autónoma. Fomenta la movilidad: pueden levantarse, ir al librero, mirar por la ventana, acercarse a otros alumnos para hablar o quedarse en sus sitios. No los mantengas estáticos si su personalidad sugiere movimiento.`

const behaviourRules = `REGLAS DE MOVIMIENTO Y COMPORTAMIENTO:
1. Movimiento: Los alumnos pueden desplazarse a cualquier celda '.' (suelo). No pueden atravesar '#'.
2. Interacción Social: Si un alumno está cerca de otro (distancia < 3), pueden hablar.
3. Consistencia: Sus acciones deben derivar de su personalidad y de lo que ha pasado antes.
4. Pensamiento vs Acción: El pensamiento debe revelar su motivación interna; la acción es lo que los demás ven.
5. Libertad: ¡No tengas miedo de moverlos! Un alumno curioso irá a investigar, uno atlético estirará, uno social buscará amigos.`

const replyFormat = `GENERA EL SIGUIENTE TURNO EN FORMATO JSON:
{
  "updates": [
    {
      "studentName": string,
      "thought": string,
      "action": string,
      "targetX": integer,
      "targetY": integer,
      "newMemory": string
    }
  ]
}
Genera actualizaciones para TODOS los estudiantes en cada turno.`

// RenderMap draws the grid: '.' free floor, '#' obstacle, a student's
// initial where someone stands.
func RenderMap(g *world.Grid, students []classroom.Student) string {
	occupant := make(map[world.Point]string, len(students))
	for _, s := range students {
		if _, taken := occupant[s.Position]; !taken {
			occupant[s.Position] = s.Initial()
		}
	}
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width(); x++ {
			p := world.Point{X: x, Y: y}
			switch {
			case occupant[p] != "":
				b.WriteString(occupant[p])
			case g.WalkableAt(p):
				b.WriteByte('.')
			default:
				b.WriteByte('#')
			}
		}
	}
	return b.String()
}

func renderProfiles(students []classroom.Student) string {
	blocks := make([]string, 0, len(students))
	for _, s := range students {
		blocks = append(blocks, fmt.Sprintf("- Alumno: %s (ID: %s, Pos: X=%d, Y=%d)\n  Perfil: %s\n  Acción Actual: %s\n  Pensamiento: %s",
			s.Name, s.ID, s.Position.X, s.Position.Y, s.Personality, s.CurrentStatus, s.CurrentThought))
	}
	return strings.Join(blocks, "\n\n")
}

// RenderHistory formats events as "[hh:mm:ss] speaker: content".
func RenderHistory(events []classroom.Event) string {
	lines := make([]string, 0, len(events))
	for _, e := range events {
		speaker := e.AgentName
		if speaker == "" {
			speaker = systemSpeaker
		}
		lines = append(lines, fmt.Sprintf("[%s] %s: %s", e.OccurredAt.Format("15:04:05"), speaker, e.Content))
	}
	return strings.Join(lines, "\n")
}

func instruction(directive string) string {
	if directive == "" {
		return freeRunInstruction
	}
	return fmt.Sprintf(`EL PROFESOR HA DICHO: "%s". Los alumnos deben procesar esta información y reaccionar de forma coherente según su personalidad.`, directive)
}

func renderPrompt(g *world.Grid, students []classroom.Student, history []classroom.Event, directive string) string {
	points := g.PointsOfInterest()
	poiLines := make([]string, 0, len(points))
	for _, p := range points {
		poiLines = append(poiLines, fmt.Sprintf("- %s: (%d, %d)", p.Label, p.X, p.Y))
	}

	var b strings.Builder
	b.WriteString("Actúa como el motor cognitivo de un aula virtual inspirada en \"Generative Agents\".\n\n")
	fmt.Fprintf(&b, "MAPA DEL AULA (%dx%d):\n", g.Width(), g.Height())
	b.WriteString("Leyenda: '.' = Suelo libre, '#' = Obstáculo, Letra = Alumno.\n\n")
	b.WriteString("ESTADO DEL GRID:\n")
	b.WriteString(RenderMap(g, students))
	b.WriteString("\n\nPUNTOS DE INTERÉS:\n")
	b.WriteString(strings.Join(poiLines, "\n"))
	b.WriteString("\n\nAGENTES ESTUDIANTES:\n")
	b.WriteString(renderProfiles(students))
	b.WriteString("\n\nMEMORIA RECIENTE (HISTORIAL):\n")
	b.WriteString(RenderHistory(history))
	b.WriteString("\n\n")
	b.WriteString(instruction(directive))
	b.WriteString("\n\n")
	b.WriteString(behaviourRules)
	b.WriteString("\n\n")
	b.WriteString(replyFormat)
	b.WriteString("\n")
	return b.String()
}
