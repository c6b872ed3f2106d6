package report

import "github.com/imoreno/wellscreen/internal/scoring"

// Texts holds the respondent-facing narrative for a tier: the technical
// interpretation, the professional reading, and the recommendation.
type Texts struct {
	Emoji          string
	Interpretation string
	Professional   string
	Recommendation string
}

// texts is keyed by tier; every tier of the closed set has an entry.
var texts = map[scoring.Tier]Texts{
	scoring.TierGreen: {
		Emoji:          "😀",
		Interpretation: "Tus respuestas muestran un estado de regulación emocional adecuado. Esto significa que tu sistema nervioso mantiene un buen balance entre las demandas externas y tus propios recursos internos. Presentas capacidad para procesar el estrés cotidiano, recuperar energía y sostener un funcionamiento estable en la vida personal y laboral.",
		Professional:   "Estar en verde no implica ausencia total de dificultades, sino que indica que posees estrategias de afrontamiento activas (hábitos, redes de apoyo, recursos psicológicos) que te permiten mantener la homeostasis emocional. En este estado, la clave es la prevención: fortalecer tus recursos antes de que aparezcan señales de desgaste.",
		Recommendation: "Continúa cultivando prácticas de autocuidado (descanso, ejercicio, espacios seguros de conversación) y busca nuevas herramientas que optimicen tu bienestar. Las personas en verde suelen beneficiarse de programas de crecimiento personal y aprendizaje en regulación emocional, que potencian la resiliencia y la eficiencia.",
	},
	scoring.TierYellow: {
		Emoji:          "😐",
		Interpretation: "Tus respuestas reflejan un estado intermedio de regulación, donde ya se evidencian signos de fatiga psicológica: menor motivación, sensación de esfuerzo sostenido y dificultad para mantener hábitos de autocuidado o concentración plena. Esto indica que tu sistema nervioso está funcionando en una fase de sobrecarga compensada, es decir, que sigues respondiendo, pero a un costo energético mayor.",
		Professional:   "La literatura en psicología de la salud muestra que este nivel corresponde a una fase de riesgo moderado, en la que las tensiones no resueltas comienzan a acumularse y afectar de manera progresiva el bienestar. Intervenir en este punto resulta altamente efectivo: evita la cronificación del malestar y favorece una recuperación más rápida y sostenida.",
		Recommendation: "Este es el momento de buscar acompañamiento estructurado, ya sea a través de procesos terapéuticos breves para el manejo emocional, o coaching focalizado en organización, hábitos y claridad mental. El objetivo es recuperar equilibrio antes de pasar a un estado rojo, logrando mayor claridad, calma y energía disponible.",
	},
	scoring.TierOrange: {
		Emoji:          "😕",
		Interpretation: "Tus respuestas indican un estado de sobrecarga sostenida: la tensión acumulada ya supera los recursos de recuperación habituales y empiezan a aparecer señales persistentes de agotamiento, ansiedad o desánimo que no remiten con el descanso cotidiano.",
		Professional:   "Este nivel corresponde a una fase de riesgo elevado, previa a la desregulación franca. La evidencia indica que la intervención profesional en esta fase reduce de forma significativa la probabilidad de progresar a un estado crítico y acorta los tiempos de recuperación.",
		Recommendation: "Se recomienda concretar una evaluación con un profesional de la salud mental en las próximas semanas, junto con medidas inmediatas de descarga: reducir exigencias no esenciales, proteger el sueño y activar tu red de apoyo cercana.",
	},
	scoring.TierRed: {
		Emoji:          "😟",
		Interpretation: "Tus respuestas indican un estado de alta desregulación emocional, caracterizado por ansiedad persistente, dificultades de sueño, pensamientos recurrentes y sensación de falta de recursos internos. Esto corresponde a un nivel crítico en la autorregulación neuropsicológica, donde el sistema nervioso permanece en modo de alerta constante y pierde capacidad de recuperación espontánea.",
		Professional:   "La evidencia clínica muestra que permanecer en este estado aumenta el riesgo de deterioro en la salud física, en las relaciones y en el rendimiento laboral. No se trata de un signo de debilidad, sino de un indicador de que tus mecanismos de afrontamiento actuales no son suficientes frente a las exigencias que enfrentas. Este resultado debe interpretarse como una señal clara de intervención inmediata.",
		Recommendation: "Es fundamental contactar a un especialista de manera prioritaria, para recibir apoyo que restaure la estabilidad emocional y fisiológica. La intervención temprana es clave: permite reducir los síntomas, prevenir complicaciones mayores y recuperar una base sólida de bienestar. Pedir ayuda en esta fase no es un signo de fragilidad, sino un acto de responsabilidad con tu salud y tu entorno.",
	},
}

// TextsForTier returns the narrative for a tier, falling back to the red
// narrative for unknown tiers.
func TextsForTier(tier scoring.Tier) Texts {
	if t, ok := texts[tier]; ok {
		return t
	}
	return texts[scoring.TierRed]
}
