package llm

import "github.com/razzzeeev/astro/internal/zodiac"

// Per-sign fallback templates used whenever the chat model cannot
// deliver. Joined as "{name}, {template}".
var fallbackTemplates = map[zodiac.Sign][]string{
	zodiac.Aries: {
		"Your fiery Aries energy is strong today. Take bold action on your goals.",
		"As an Aries, you're feeling particularly driven. Channel this energy into productive pursuits.",
	},
	zodiac.Taurus: {
		"Your grounded Taurus nature will help you stay steady through any challenges today.",
		"As a Taurus, focus on stability and comfort. Trust your practical instincts.",
	},
	zodiac.Gemini: {
		"Your curious Gemini mind is buzzing with ideas today. Share your thoughts with others.",
		"As a Gemini, communication is key. Express yourself clearly and listen actively.",
	},
	zodiac.Cancer: {
		"Your intuitive Cancer nature is heightened today. Trust your emotional intelligence.",
		"As a Cancer, focus on nurturing relationships and creating a safe space for yourself.",
	},
	zodiac.Leo: {
		"Your innate leadership and warmth will shine today. Embrace spontaneity and avoid overthinking.",
		"As a Leo, your natural charisma is at its peak. Share your light with others.",
	},
	zodiac.Virgo: {
		"Your analytical Virgo mind will help you solve complex problems today.",
		"As a Virgo, attention to detail is your strength. Use it to improve your daily routines.",
	},
	zodiac.Libra: {
		"Your diplomatic Libra nature will help you find balance in relationships today.",
		"As a Libra, seek harmony and beauty. Make time for things that bring you joy.",
	},
	zodiac.Scorpio: {
		"Your intense Scorpio energy is focused today. Dive deep into what matters most.",
		"As a Scorpio, your transformative power is strong. Embrace change and growth.",
	},
	zodiac.Sagittarius: {
		"Your adventurous Sagittarius spirit is calling. Explore new ideas and perspectives.",
		"As a Sagittarius, your optimism will carry you through. Keep your eyes on the horizon.",
	},
	zodiac.Capricorn: {
		"Your disciplined Capricorn nature will help you achieve your goals today.",
		"As a Capricorn, focus on long-term planning. Your hard work is paying off.",
	},
	zodiac.Aquarius: {
		"Your innovative Aquarius mind is full of unique ideas today. Share your vision.",
		"As an Aquarius, your humanitarian spirit is strong. Connect with your community.",
	},
	zodiac.Pisces: {
		"Your intuitive Pisces nature is guiding you today. Trust your inner voice.",
		"As a Pisces, your creativity and empathy are heightened. Express yourself authentically.",
	},
}

// genericTemplate covers signs missing from the table, which cannot
// happen for resolver-produced signs.
const genericTemplate = "trust your intuition today. The stars are aligned in your favor."

// journeySuffix is appended for users past their first insight.
const journeySuffix = " Based on your journey, continue trusting your path."

// preamble is the system instruction for the astrologer persona.
const preamble = "You are an expert astrologer who provides personalized, warm, and insightful daily horoscopes. Keep responses concise (1-2 sentences) and encouraging."
