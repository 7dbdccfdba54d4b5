// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package locale

// =============================================================================
// TOPIC KEYS
// =============================================================================

// TopicKey identifies one canned-reply topic in the localization table.
// The keys mirror the response engine's topics; the engine owns matching and
// priority, this package only owns the localized bodies.
type TopicKey string

const (
	TopicPrice      TopicKey = "price"
	TopicExperience TopicKey = "experience"
	TopicBooking    TopicKey = "booking"
	TopicInclusions TopicKey = "inclusions"
	TopicWeather    TopicKey = "weather"
	TopicDefault    TopicKey = "default"
)

// =============================================================================
// CANNED REPLIES
// =============================================================================

// replies maps topic → language → reply body. Bodies are short markdown.
var replies = map[TopicKey]map[Language]string{
	TopicPrice: {
		English: "A one-day regatta experience starts at **€450** per person, and the three-day coastal series starts at **€1,200**. Private charters are quoted individually — the exact price depends on the boat class and the season.",
		Spanish: "La experiencia de regata de un día empieza en **450 €** por persona, y la serie costera de tres días en **1.200 €**. Los chárteres privados se presupuestan individualmente: el precio exacto depende de la clase de barco y de la temporada.",
		French:  "La régate d'une journée commence à **450 €** par personne, et la série côtière de trois jours à **1 200 €**. Les charters privés sont devisés individuellement — le prix exact dépend de la classe du bateau et de la saison.",
		German:  "Das Tages-Regatta-Erlebnis beginnt bei **450 €** pro Person, die dreitägige Küstenserie bei **1.200 €**. Private Charter werden individuell kalkuliert — der genaue Preis hängt von Bootsklasse und Saison ab.",
		Italian: "L'esperienza di regata di un giorno parte da **450 €** a persona, la serie costiera di tre giorni da **1.200 €**. I charter privati vengono quotati individualmente: il prezzo esatto dipende dalla classe di barca e dalla stagione.",
		Russian: "Однодневная регата стоит от **450 €** с человека, трёхдневная прибрежная серия — от **1 200 €**. Частный чартер рассчитывается индивидуально: точная цена зависит от класса яхты и сезона.",
	},
	TopicExperience: {
		English: "No racing experience is required — every boat sails with a professional skipper and instructor. If you can follow safety instructions, you can crew. Experienced sailors can ask for an active trimming or helming role.",
		Spanish: "No se necesita experiencia en regatas: cada barco navega con patrón e instructor profesionales. Si puedes seguir las instrucciones de seguridad, puedes ser tripulante. Los navegantes con experiencia pueden pedir un rol activo al timón o en el trimado.",
		French:  "Aucune expérience de régate n'est requise — chaque bateau navigue avec un skipper et un instructeur professionnels. Si vous savez suivre les consignes de sécurité, vous pouvez embarquer. Les marins confirmés peuvent demander un rôle actif à la barre ou au réglage.",
		German:  "Regatta-Erfahrung ist nicht nötig — jedes Boot segelt mit professionellem Skipper und Instruktor. Wer Sicherheitsanweisungen folgen kann, kann mitsegeln. Erfahrene Segler können eine aktive Rolle am Ruder oder beim Trimmen übernehmen.",
		Italian: "Non serve esperienza di regata: ogni barca naviga con skipper e istruttore professionisti. Se sai seguire le istruzioni di sicurezza, puoi far parte dell'equipaggio. I velisti esperti possono chiedere un ruolo attivo al timone o alle regolazioni.",
		Russian: "Опыт участия в регатах не требуется — на каждой яхте есть профессиональный шкипер и инструктор. Если вы можете следовать инструкциям по безопасности, вы можете быть членом экипажа. Опытные яхтсмены могут попросить активную роль на руле или на настройке парусов.",
	},
	TopicBooking: {
		English: "You can book directly on our website: pick a date, choose a boat class, and pay online. A 30% deposit confirms your spot; the balance is due 14 days before the start.",
		Spanish: "Puedes reservar directamente en nuestra web: elige fecha y clase de barco y paga en línea. Un depósito del 30 % confirma tu plaza; el resto se abona 14 días antes de la salida.",
		French:  "Vous pouvez réserver directement sur notre site : choisissez une date et une classe de bateau, puis payez en ligne. Un acompte de 30 % confirme votre place ; le solde est dû 14 jours avant le départ.",
		German:  "Sie können direkt auf unserer Website buchen: Datum und Bootsklasse wählen und online bezahlen. Eine Anzahlung von 30 % sichert Ihren Platz; der Rest ist 14 Tage vor dem Start fällig.",
		Italian: "Puoi prenotare direttamente sul nostro sito: scegli una data e una classe di barca e paga online. Un acconto del 30% conferma il tuo posto; il saldo va versato 14 giorni prima della partenza.",
		Russian: "Забронировать можно прямо на нашем сайте: выберите дату и класс яхты и оплатите онлайн. Депозит 30% подтверждает место; остаток вносится за 14 дней до старта.",
	},
	TopicInclusions: {
		English: "Every tour includes the yacht and skipper, all safety equipment, foul-weather gear, marina fees, and onboard snacks and water. Travel, accommodation ashore, and personal insurance are not included.",
		Spanish: "Cada tour incluye el barco con patrón, todo el equipo de seguridad, ropa de aguas, tasas de puerto y snacks y agua a bordo. No se incluyen los desplazamientos, el alojamiento en tierra ni el seguro personal.",
		French:  "Chaque tour comprend le bateau avec skipper, tout l'équipement de sécurité, les cirés, les frais de port, ainsi que collations et eau à bord. Le transport, l'hébergement à terre et l'assurance personnelle ne sont pas compris.",
		German:  "Jede Tour umfasst Yacht und Skipper, die komplette Sicherheitsausrüstung, Ölzeug, Hafengebühren sowie Snacks und Wasser an Bord. Anreise, Unterkunft an Land und persönliche Versicherung sind nicht enthalten.",
		Italian: "Ogni tour include barca e skipper, tutta l'attrezzatura di sicurezza, le cerate, le tasse portuali e snack e acqua a bordo. Non sono inclusi i trasferimenti, l'alloggio a terra e l'assicurazione personale.",
		Russian: "Во все туры включены яхта со шкипером, всё оборудование безопасности, непромокаемая одежда, портовые сборы, а также вода и снеки на борту. Дорога, проживание на берегу и личная страховка не включены.",
	},
	TopicWeather: {
		English: "We sail in most conditions, but safety always comes first. If the race committee cancels a day because of weather, you can rebook for free or get a full refund for the affected day.",
		Spanish: "Navegamos en casi todas las condiciones, pero la seguridad es lo primero. Si el comité de regata cancela un día por el tiempo, puedes cambiar la reserva gratis o recibir el reembolso completo de ese día.",
		French:  "Nous naviguons par presque tous les temps, mais la sécurité prime. Si le comité de course annule une journée pour cause de météo, vous pouvez re-réserver gratuitement ou être intégralement remboursé de la journée concernée.",
		German:  "Wir segeln bei fast jedem Wetter, aber Sicherheit geht vor. Sagt das Wettfahrtkomitee einen Tag wetterbedingt ab, können Sie kostenlos umbuchen oder erhalten den betroffenen Tag voll erstattet.",
		Italian: "Navighiamo in quasi tutte le condizioni, ma la sicurezza viene prima di tutto. Se il comitato di regata annulla una giornata per il meteo, puoi riprenotare gratuitamente o ottenere il rimborso completo della giornata.",
		Russian: "Мы выходим в море почти в любую погоду, но безопасность важнее всего. Если гоночный комитет отменяет день из-за погоды, вы можете бесплатно перенести бронь или получить полный возврат за этот день.",
	},
	TopicDefault: {
		English: "I'm not sure I understood that. I can help with prices, booking, experience requirements, what's included, or our weather policy — or pick one of the options below.",
		Spanish: "No estoy seguro de haberte entendido. Puedo ayudarte con precios, reservas, experiencia necesaria, qué está incluido o nuestra política meteorológica; también puedes elegir una de las opciones de abajo.",
		French:  "Je ne suis pas sûr d'avoir compris. Je peux vous renseigner sur les prix, la réservation, l'expérience requise, les prestations incluses ou la politique météo — ou choisissez une option ci-dessous.",
		German:  "Das habe ich leider nicht verstanden. Ich helfe gern bei Preisen, Buchung, nötiger Erfahrung, Leistungen oder unserer Wetterregelung — oder wählen Sie unten eine Option.",
		Italian: "Non sono sicuro di aver capito. Posso aiutarti con prezzi, prenotazioni, esperienza richiesta, cosa è incluso o la politica meteo — oppure scegli una delle opzioni qui sotto.",
		Russian: "Я не совсем понял вопрос. Я могу рассказать о ценах, бронировании, требуемом опыте, о том, что включено, и о погодных условиях — или выберите один из вариантов ниже.",
	},
}

// Reply returns the canned reply body for a topic in the given language.
// Unknown topics resolve to the default topic; unsupported languages fall
// back to English.
func Reply(t TopicKey, l Language) string {
	byLang, ok := replies[t]
	if !ok {
		byLang = replies[TopicDefault]
	}
	if body, ok := byLang[l]; ok {
		return body
	}
	return byLang[English]
}

// =============================================================================
// QUICK-REPLY SUGGESTIONS
// =============================================================================

// defaultSuggestions holds the localized quick replies offered alongside the
// default (no topic matched) response. Topic responses carry their own fixed
// English-authored suggestion lists, owned by the response engine.
var defaultSuggestions = map[Language][]string{
	English: {"View prices", "How do I book?", "Do I need experience?", "What's included?"},
	Spanish: {"Ver precios", "¿Cómo reservo?", "¿Necesito experiencia?", "¿Qué está incluido?"},
	French:  {"Voir les prix", "Comment réserver ?", "Faut-il de l'expérience ?", "Qu'est-ce qui est inclus ?"},
	German:  {"Preise ansehen", "Wie buche ich?", "Brauche ich Erfahrung?", "Was ist enthalten?"},
	Italian: {"Vedi i prezzi", "Come prenoto?", "Serve esperienza?", "Cosa è incluso?"},
	Russian: {"Посмотреть цены", "Как забронировать?", "Нужен ли опыт?", "Что включено?"},
}

// DefaultSuggestions returns a copy of the default quick replies for a
// language, falling back to English.
func DefaultSuggestions(l Language) []string {
	src, ok := defaultSuggestions[l]
	if !ok {
		src = defaultSuggestions[English]
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
