package script

import "faceless-pipeline/ideas"

// entry is one reusable unit-section body. The lead line names the unit;
// the sentences that follow are taken in order until the section's word
// budget is met, so the same pool serves both short and long scripts.
type entry struct {
	lead      string
	sentences []string
}

// listPools holds the unit bodies for count-driven list titles, keyed by
// the same categories the idea templates use.
var listPools = map[ideas.Category][]entry{
	ideas.CategoryFinance: {
		{"Pay yourself first.", []string{
			"Before rent, before bills, before anything else, move a fixed slice of every paycheck into savings.",
			"Most people save whatever is left at the end of the month, and for most people that number is zero.",
			"Flip the order and the saving happens automatically, no willpower required.",
			"Even ten percent adds up faster than you think once it compounds.",
			"Set up the transfer today so it runs before you ever see the money.",
		}},
		{"Know the difference between assets and liabilities.", []string{
			"An asset puts money in your pocket, a liability takes money out, and that single distinction explains most wealth gaps.",
			"The car that loses value every month is not an investment no matter what the salesperson said.",
			"Wealthy people spend their income buying things that pay them back.",
			"Everyone else buys things that look like wealth and quietly drain it.",
			"Audit what you own and ask of each item: does this pay me, or do I pay it?",
		}},
		{"Use the 72-hour rule on every non-essential purchase.", []string{
			"When you want something that is not essential, wait three full days before buying it.",
			"Impulse is a chemical spike, and it fades on its own if you give it time.",
			"Most of the things in your cart will stop mattering by day two.",
			"The ones that still matter on day three are the ones worth paying for.",
			"This one habit quietly cancels hundreds of dollars of regret per year.",
		}},
		{"Build the emergency fund before you invest a cent.", []string{
			"Three to six months of expenses in boring cash is the foundation everything else stands on.",
			"Without it, every surprise bill becomes debt, and debt compounds against you.",
			"With it, a job loss is an inconvenience instead of a catastrophe.",
			"Park it somewhere liquid and forget it exists until you actually need it.",
			"It is not exciting, which is exactly why it works.",
		}},
		{"Never rely on a single income stream.", []string{
			"The average millionaire has several streams of income, and none of them started with more than one.",
			"A salary is one point of failure controlled entirely by someone else.",
			"A second stream does not need to be big, it needs to exist.",
			"Start with something small that survives a bad month at your day job.",
			"Diversified income is the difference between a setback and a disaster.",
		}},
		{"Track every dollar for one month.", []string{
			"You cannot fix a leak you cannot see, and most budgets leak in places nobody checks.",
			"Write down everything you spend for thirty days, no exceptions and no judgment.",
			"The first week is annoying, the last week is eye-opening.",
			"Most people find a few hundred dollars of spending they do not remember choosing.",
			"Awareness alone changes behavior before you change a single habit.",
		}},
		{"Let compound interest do the heavy lifting.", []string{
			"Money invested early is worth multiples of the same money invested late, and the gap is brutal.",
			"A dollar at twenty-five can outgrow three dollars at forty-five.",
			"The market rewards time in far more than timing.",
			"Boring index funds held for decades beat almost every clever strategy.",
			"Start now with whatever you have, because the calendar is the one input you cannot buy back.",
		}},
		{"Avoid lifestyle inflation like it's a tax.", []string{
			"Every raise you immediately spend is a raise you never received.",
			"The trap is invisible because everyone around you is in it too.",
			"Keep your expenses flat for one year after a raise and bank the difference.",
			"That single decision can fund an entire investment account.",
			"Live like the old salary and let the new one build your exit.",
		}},
		{"Negotiate everything once a year.", []string{
			"Your salary, your rent, your insurance, your subscriptions, all of them are more flexible than they look.",
			"Companies count on you never asking, and most people never do.",
			"A single uncomfortable phone call can be worth a thousand dollars an hour.",
			"The worst realistic outcome is hearing the word no.",
			"Put a yearly reminder on your calendar and treat it like a bill that pays you.",
		}},
		{"Buy back your time before you buy anything else.", []string{
			"Past a certain point, time is the only currency that matters, and it only converts one way.",
			"Price big purchases in hours of your life instead of dollars.",
			"A gadget that costs forty hours of work has to be worth forty hours of your life.",
			"Spending that frees up time compounds just like invested money.",
			"The richest version of you has margin, not just money.",
		}},
	},
	ideas.CategoryTechnology: {
		{"Learn one AI tool deeply instead of ten shallowly.", []string{
			"The people getting outsized results are not using more tools, they are using one tool past the beginner plateau.",
			"Pick the tool closest to your actual daily work and live in it for a month.",
			"Depth compounds, novelty does not.",
			"Every hour past the basics returns more than the hour before it.",
			"Switching tools every week resets the clock to zero.",
		}},
		{"Automate the task you repeat every single day.", []string{
			"Anything you do daily is worth automating even if the automation takes ten times longer to build.",
			"A fifteen-minute task automated saves over ninety hours a year.",
			"Start with the most boring task, not the most impressive one.",
			"Boring tasks have stable inputs, and stable inputs make reliable automations.",
			"The first one is the hardest, and then you start seeing candidates everywhere.",
		}},
		{"Turn off notifications that don't need you today.", []string{
			"Every ping is a context switch, and context switches cost you around twenty minutes of focus each.",
			"Most notifications exist for the app's benefit, not yours.",
			"Go through every app and ask whether it deserves to interrupt you.",
			"The honest answer for nearly all of them is no.",
			"Your phone should work for you, not recruit you.",
		}},
		{"Use keyboard shortcuts for your top five actions.", []string{
			"The mouse is the slowest part of almost every workflow you run.",
			"Five shortcuts cover the vast majority of what you actually do.",
			"Learn one per day for a week and they become muscle memory.",
			"The speedup feels small per action and enormous per year.",
			"Power users are not smarter, they just touch the mouse less.",
		}},
		{"Keep one system of record and stop duplicating notes.", []string{
			"Information scattered across six apps might as well not exist.",
			"Pick one place where everything important ends up, and ruthlessly forward to it.",
			"The best system is the one you actually check, not the prettiest one.",
			"Search beats organization, so stop building perfect folder trees.",
			"One trusted inbox removes the background anxiety of losing things.",
		}},
		{"Back up before you need the backup.", []string{
			"Everyone has two states: has backups, or has not lost data yet.",
			"One local copy plus one cloud copy covers almost every disaster.",
			"Automate it so it happens while you sleep.",
			"Test a restore once, because an untested backup is a hope, not a plan.",
			"Ten minutes of setup buys you out of the worst day of your digital life.",
		}},
		{"Use a password manager, full stop.", []string{
			"Reused passwords are how ordinary people get every account taken at once.",
			"A manager means every site gets a unique password you never have to remember.",
			"The setup takes one afternoon and pays off forever.",
			"Turn on two-factor for email and banking first, those are the keys to everything else.",
			"Security is boring right up until the day it's the only thing that matters.",
		}},
		{"Batch your communication instead of living in it.", []string{
			"Checking email forty times a day means doing email badly forty times.",
			"Two or three fixed windows handle the same volume with a fraction of the drag.",
			"Almost nothing in an inbox is actually urgent.",
			"The people who matter will call if it is.",
			"Protect your deep hours and let the shallow work wait its turn.",
		}},
		{"Learn to search like a professional.", []string{
			"The answer to most technical problems is already written down, the skill is finding it fast.",
			"Exact-phrase quotes, site filters, and error-message searches cut discovery time massively.",
			"Searching well is a learnable skill, not a personality trait.",
			"The best engineers are not the ones who know everything, they are the ones who find anything.",
			"Ten minutes learning search operators saves hours every month.",
		}},
		{"Audit your subscriptions quarterly.", []string{
			"Software subscriptions are designed to be forgotten, and forgetting is exactly what most people do.",
			"Every quarter, list them all and cancel anything you have not opened in a month.",
			"The average household is paying for several services nobody uses.",
			"Resubscribing later is always possible and almost never happens.",
			"Silent spending is still spending.",
		}},
	},
	ideas.CategoryHealth: {
		{"Get sunlight within an hour of waking.", []string{
			"Morning light is the strongest signal your body clock receives all day.",
			"Ten minutes outside sets your energy curve and your sleep twelve hours later.",
			"A window does not count, the glass filters the wavelengths that matter.",
			"This costs nothing and outperforms most supplements people pay for.",
			"Do it before the phone, not after.",
		}},
		{"Protect the last hour before bed.", []string{
			"Sleep quality is decided before you get into bed, not after.",
			"Screens, heavy food, and bright lights in the final hour all push your body clock later.",
			"A consistent wind-down routine tells your brain the day is over.",
			"Cool, dark, and quiet beats any sleep gadget on the market.",
			"Guard that hour like an appointment, because it is one.",
		}},
		{"Walk after every meal, even for five minutes.", []string{
			"A short walk after eating blunts the blood sugar spike that causes the afternoon crash.",
			"It is the cheapest metabolic intervention that exists.",
			"Five minutes is enough, perfection is not required.",
			"Stack it onto something you already do, like a phone call.",
			"Small and consistent beats heroic and occasional every time.",
		}},
		{"Drink water before you diagnose anything else.", []string{
			"A surprising amount of fatigue, headache, and brain fog is plain dehydration.",
			"Most people run mildly dehydrated all day without noticing.",
			"A glass first thing in the morning covers the overnight deficit.",
			"Keep water visible, because visible means consumed.",
			"Try two weeks of proper hydration before buying anything in a bottle.",
		}},
		{"Lift something heavy twice a week.", []string{
			"Muscle is the closest thing we have to a longevity drug.",
			"Strength training twice a week protects your joints, your bones, and your independence at eighty.",
			"You do not need a program, you need consistency with basic movements.",
			"The hardest part is the door of the gym, not the workout.",
			"Start embarrassingly light and let progress do the motivating.",
		}},
		{"Eat protein first at every meal.", []string{
			"Protein is the most satiating macronutrient, and eating it first changes how much of everything else you want.",
			"Most people under-eat protein and over-eat everything around it.",
			"You do not need a diet overhaul, you need a sequencing change.",
			"Palm-sized portion per meal is a good enough rule to start.",
			"Small lever, outsized effect.",
		}},
		{"Schedule worry instead of carrying it.", []string{
			"Anxiety expands to fill whatever attention you give it.",
			"Set a fifteen-minute daily window to think about the things bothering you, and defer them to it.",
			"Most worries do not survive being written down and scheduled.",
			"The ones that do are real problems, and real problems have next steps.",
			"You cannot stop thoughts arriving, but you can stop hosting them all day.",
		}},
		{"Breathe slower to switch states.", []string{
			"Your breath is the only part of the stress response you can steer directly.",
			"A long exhale tells the nervous system the danger has passed.",
			"Five slow breaths before a hard conversation changes how you show up to it.",
			"It works in traffic, in meetings, and at three in the morning.",
			"Free, invisible, and always installed.",
		}},
		{"Keep a consistent wake time, even weekends.", []string{
			"Your body clock does not know about Saturdays.",
			"A wake time that swings by hours gives you jet lag without the travel.",
			"Fix the wake time first and the bedtime sorts itself out.",
			"Within two weeks, mornings stop being a fight.",
			"Consistency is the whole trick, there is no other trick.",
		}},
		{"Make the healthy choice the easy choice.", []string{
			"Willpower is a terrible long-term strategy, environment design is a great one.",
			"Fruit on the counter gets eaten, fruit in the drawer does not.",
			"Put the running shoes by the door and the phone charger outside the bedroom.",
			"You do not rise to your goals, you fall to your defaults.",
			"Engineer the defaults and the goals take care of themselves.",
		}},
	},
	ideas.CategoryEducation: {
		{"Test yourself instead of re-reading.", []string{
			"Re-reading feels like learning, but recall is what builds memory.",
			"Closing the book and explaining the idea out loud beats another highlight pass.",
			"The struggle to remember is not a failure, it is the exercise itself.",
			"Flashcards work because they force retrieval, not because of the cards.",
			"If it feels easy, it probably is not working.",
		}},
		{"Space the practice out.", []string{
			"Ten minutes a day for a week beats seventy minutes in one sitting.",
			"Forgetting a little between sessions is what makes the memory durable.",
			"Cramming works for tomorrow and fails for next month.",
			"Build revisits into the calendar, not into good intentions.",
			"The schedule is the study method.",
		}},
		{"Teach it to learn it.", []string{
			"If you cannot explain an idea simply, you have found the gap in your understanding.",
			"Explaining forces your brain to organize, and organization is comprehension.",
			"An imaginary student works fine, a real one works better.",
			"The questions you cannot answer are tomorrow's study list.",
			"Teaching is not what comes after learning, it is how learning finishes.",
		}},
		{"Start before you feel ready.", []string{
			"Readiness is a feeling, not a prerequisite.",
			"The first version of anything is supposed to be bad, that is what versions are for.",
			"Waiting to feel prepared is the most respectable form of procrastination.",
			"Momentum creates confidence far more reliably than preparation does.",
			"Begin badly today instead of perfectly never.",
		}},
		{"Follow curiosity, it's a better fuel than discipline.", []string{
			"You will outwork everyone at the thing you cannot stop thinking about.",
			"Curiosity makes hours feel like minutes, discipline makes minutes feel like hours.",
			"Let the interesting question pick the next book, not the syllabus.",
			"The detours are usually where the good stuff lives.",
			"Sustainable learning runs on want, not should.",
		}},
		{"Use the first principles question.", []string{
			"When something is confusing, ask what would have to be true for this to work.",
			"Most complexity is a stack of simple ideas wearing a trench coat.",
			"Strip the jargon and the core is usually small.",
			"Reasoning from the ground up beats memorizing the conclusions.",
			"This one question converts confusion into a checklist.",
		}},
		{"Keep a question log.", []string{
			"Write down every question you cannot answer the moment it occurs to you.",
			"Unwritten questions evaporate, written ones get answered.",
			"Reviewing the log weekly turns idle confusion into a curriculum.",
			"The quality of your questions predicts the quality of your learning.",
			"Smart is mostly a backlog of curiosity, processed.",
		}},
		{"Embrace being the beginner in the room.", []string{
			"The fastest learners are the ones willing to look slow in public.",
			"Every expert spent years being visibly bad first.",
			"Asking the basic question usually helps half the room silently.",
			"Ego protects your image and starves your progress.",
			"Comfort with not knowing is the actual superpower.",
		}},
		{"Connect the new thing to something you already know.", []string{
			"Memory is associative, so isolated facts have nothing to hold on to.",
			"An analogy, even a bad one, gives the new idea an address in your head.",
			"Ask what this reminds you of before asking what it means.",
			"The web of connections is the knowledge, the facts are just nodes.",
			"Understanding is mostly plumbing between old ideas and new ones.",
		}},
		{"Review at the edge of forgetting.", []string{
			"The best moment to revisit material is right before it slips away.",
			"Too soon is wasted effort, too late is starting over.",
			"A simple expanding schedule, one day, three days, a week, captures most of the benefit.",
			"Tools can track this for you, but a calendar works fine.",
			"Timing turns the same hour of review into triple the retention.",
		}},
	},
}

// lessonPool backs the "things I learned" family regardless of category.
var lessonPool = []entry{
	{"Nobody is thinking about you as much as you think.", []string{
		"The spotlight effect convinces you everyone noticed your mistake, and almost nobody did.",
		"People are the main character of their own day, not the audience of yours.",
		"Realizing this is a license to try things in public.",
		"The fear of judgment costs more than judgment ever does.",
	}},
	{"Consistency beats intensity, every single time.", []string{
		"The person who shows up daily laps the person who sprints monthly.",
		"Intensity makes good stories, consistency makes good outcomes.",
		"Design the habit so small you cannot say no to it.",
		"Then let time do what motivation cannot.",
	}},
	{"You become your environment faster than your intentions.", []string{
		"Five people and one room shape you more than any plan you write.",
		"Changing yourself is hard, changing the room is logistics.",
		"Audit who and what you are around by default.",
		"Proximity is destiny, choose it on purpose.",
	}},
	{"Done is a decision, not a feeling.", []string{
		"Perfectionism is fear with a good publicist.",
		"Shipping the imperfect version teaches you more than polishing the unshipped one.",
		"Set the deadline first and let quality negotiate with it.",
		"The work that exists beats the work that is almost ready.",
	}},
	{"Most advice describes the advisor, not you.", []string{
		"People recommend the path that worked for them from the starting point they had.",
		"Collect advice as data, not as instructions.",
		"The question is never whether it is good advice, it is whether it transfers.",
		"Your context is a variable nobody else can see.",
	}},
	{"The hard conversation is cheaper early.", []string{
		"Every avoided conversation accrues interest.",
		"Ten awkward minutes today replaces a relationship-ending blowup next year.",
		"Clarity is kindness, even when it is uncomfortable.",
		"Say the thing while it is still small.",
	}},
	{"Energy management beats time management.", []string{
		"An hour of rested focus outproduces four hours of tired grinding.",
		"Schedule the hard thing for your best hours, not your free hours.",
		"Rest is not the opposite of work, it is a phase of it.",
		"Protect the inputs and the outputs follow.",
	}},
	{"You can just ask.", []string{
		"The raise, the discount, the introduction, the second chance, most of them are one question away.",
		"The answer is already no if you never ask.",
		"People say yes far more often than your anxiety predicts.",
		"Asking is a skill, and it improves exactly like one.",
	}},
}

// incomePool backs the passive-income family.
var incomePool = []entry{
	{"Dividend index funds.", []string{
		"The most boring stream on this list, and the one that has made the most millionaires.",
		"You buy once, reinvest automatically, and the payouts grow while you ignore them.",
		"No tenants, no customers, no maintenance.",
		"It scales with exactly one input: time.",
	}},
	{"Digital products that sell while you sleep.", []string{
		"A template, a guide, or a course is built once and sold indefinitely.",
		"The margin on a file is effectively one hundred percent.",
		"The catch is the work up front and the marketing after.",
		"Solve one specific problem for one specific person and price it fairly.",
	}},
	{"High-yield savings on your idle cash.", []string{
		"Not glamorous, but money sitting in a zero-interest account is a silent loss.",
		"Moving the emergency fund takes twenty minutes and pays out monthly forever.",
		"Every stream on this list starts by not wasting the cash you already have.",
		"Free money is rare, this is the closest thing to it.",
	}},
	{"Content that compounds.", []string{
		"A video or article keeps earning attention years after the work ended.",
		"Each piece is a small asset, and a library of them is a portfolio.",
		"The early numbers are discouraging for everyone, not just you.",
		"Publish on a schedule and let the back catalog do the compounding.",
	}},
	{"Renting out what you already own.", []string{
		"The spare room, the parking spot, the camera gear gathering dust.",
		"Idle assets are inventory you have not listed yet.",
		"Platforms have made the matching problem trivial.",
		"Start with one listing and learn the mechanics cheap.",
	}},
	{"Affiliate recommendations done honestly.", []string{
		"If you already recommend tools you love, a link makes that a revenue stream.",
		"The trust is the asset, which means the fastest way to kill it is recommending junk.",
		"Only link things you would defend in person.",
		"Small audiences with high trust out-earn big audiences without it.",
	}},
	{"Lending through funds, not friends.", []string{
		"Credit has been an income stream for centuries, and funds let you hold a sliver of it.",
		"Diversification across many loans is what separates investing from gambling here.",
		"Expect boring single-digit returns and treat anything promising more as a warning.",
		"Position it as a slice of the portfolio, never the whole plate.",
	}},
	{"Automate a service, then sell the automation.", []string{
		"Every manual service you perform hides a product that could perform it.",
		"The script that saves you an hour saves a thousand strangers the same hour.",
		"Charge for the outcome, not the code.",
		"This is the stream where technical skills pay twice.",
	}},
}

// techniquePool backs the self-help family.
var techniquePool = []entry{
	{"The physiological sigh.", []string{
		"Two short inhales through the nose, one long exhale through the mouth.",
		"It is the fastest known lever on the stress response, and it works mid-meeting.",
		"One or two cycles is enough to feel the shift.",
		"No app, no subscription, no one even notices you doing it.",
	}},
	{"Name the feeling to tame it.", []string{
		"Putting an emotion into words measurably dials down the alarm underneath it.",
		"Vague dread shrinks when it becomes a specific sentence.",
		"Say it, write it, or type it, the channel does not matter.",
		"You cannot steer a thing you refuse to name.",
	}},
	{"The five-minute start.", []string{
		"Commit to five minutes of the dreaded task, with full permission to stop after.",
		"Starting is the expensive part, continuing is nearly free.",
		"Most sessions keep going once the engine is warm.",
		"The ones that stop at five still beat the zero you had planned.",
	}},
	{"Worry postponement.", []string{
		"Give your worries a scheduled appointment instead of an all-day pass.",
		"When the spiral starts, note it down and return to it at the set time.",
		"Half the list will look absurd by then.",
		"The other half gets your full attention instead of your background dread.",
	}},
	{"The evening shutdown ritual.", []string{
		"Work that never officially ends never lets your brain off shift.",
		"A closing routine, tomorrow's list, tabs closed, one deep breath, draws the line.",
		"The ritual matters more than its contents.",
		"Ending the day on purpose is how the next one starts well.",
	}},
	{"Move before you ruminate.", []string{
		"A stressed body keeps voting for a stressed mind.",
		"Ten minutes of walking changes the chemistry the thoughts are swimming in.",
		"Motion will not solve the problem, but it changes who is looking at it.",
		"Think of it as rebooting the operator before retrying the task.",
	}},
	{"Limit the inputs during hard weeks.", []string{
		"News, feeds, and group chats are stimulants, and stimulants have dosages.",
		"During a rough stretch, cutting inputs is faster than adding coping.",
		"Quiet is not ignorance, it is triage.",
		"You can rejoin the noise when you have the margin for it.",
	}},
	{"Keep one anchor habit.", []string{
		"In chaotic seasons, hold one small daily habit and forgive everything else.",
		"The habit's job is identity, not output.",
		"One kept promise a day is enough to stay yourself.",
		"Rebuild the rest from that foothold when the weather passes.",
	}},
}

// stepPool backs the how-to family.
var stepPool = []entry{
	{"Define what done looks like.", []string{
		"Most projects fail at the definition, not the execution.",
		"Write one sentence describing the finished state a stranger could verify.",
		"Vague goals produce vague effort.",
		"If you cannot describe done, you cannot arrive at it.",
	}},
	{"Shrink the first step until it's trivial.", []string{
		"The gap between intending and starting is where everything dies.",
		"Make step one so small it is harder to skip than to do.",
		"Open the document, put on the shoes, send the one-line email.",
		"Trivial first steps have a suspicious habit of turning into sessions.",
	}},
	{"Set a deadline with a witness.", []string{
		"A private deadline is a suggestion, a witnessed one is a commitment.",
		"Tell one person the date and ask them to check.",
		"Social stakes are cheap to create and embarrassingly effective.",
		"Choose a witness who will actually follow up.",
	}},
	{"Schedule the work, don't wait for the mood.", []string{
		"Motivation is weather, the calendar is climate.",
		"A recurring block at your best hour removes the daily negotiation.",
		"Show up for the block even if the session is mediocre.",
		"Frequency builds the skill that makes future sessions good.",
	}},
	{"Review weekly and adjust once.", []string{
		"A short weekly review catches drift while it is still cheap to correct.",
		"Ask what worked, what did not, and what one thing changes next week.",
		"One adjustment per week compounds, ten per week thrash.",
		"The plan serves you, update it without ceremony.",
	}},
	{"Remove one point of friction.", []string{
		"Every step between you and the task is a place to quit.",
		"Lay out the tools the night before and the morning argument disappears.",
		"Friction removed once pays out every single day after.",
		"Design the path of least resistance to point where you want to go.",
	}},
	{"Find one person slightly ahead of you.", []string{
		"Someone two steps ahead remembers the problems you have right now.",
		"Their shortcuts are current, their warnings are specific.",
		"Most people are flattered to be asked, not bothered.",
		"One coffee with the right person replaces a month of guessing.",
	}},
	{"Ship, gather feedback, repeat.", []string{
		"The loop is the method: finish a version, show it, fold in what you learn.",
		"Feedback on real work beats speculation about imagined work.",
		"Each cycle is smaller and better-aimed than the last.",
		"Progress is measured in loops closed, not hours spent.",
	}},
}

// challengeBeats are the fixed narrative sections for "I tried X" titles.
var challengeBeats = []struct {
	name      string
	sentences []string
}{
	{"WHY I DID THIS", []string{
		"I kept seeing %TOPIC% everywhere, and every claim sounded too good to be checked by anyone.",
		"So instead of arguing in comment sections, I decided to run the experiment on myself.",
		"The rules were simple: follow it properly, track everything, and report what actually happened.",
		"No sponsorships, no shortcuts, and no quitting early no matter how it went.",
	}},
	{"THE SETUP", []string{
		"Before starting, I wrote down my baseline so the results could not lie to me later.",
		"I set a fixed daily check-in, a simple tracking sheet, and one rule for what counted as failure.",
		"Preparation took a single evening, which was the easiest part of the entire experience.",
		"Then the first morning arrived, and the theory met the alarm clock.",
	}},
	{"THE FIRST DAYS", []string{
		"The first days were powered entirely by novelty, and the novelty wore off on schedule.",
		"Day three is where the negotiating voice showed up, offering very reasonable excuses.",
		"I kept going mostly because I had told people I would.",
		"Accountability, it turns out, does more work than motivation.",
	}},
	{"WHERE IT GOT HARD", []string{
		"The middle stretch was the real test, when it was no longer new and not yet done.",
		"I missed once, nearly quit, and learned the difference between a slip and a collapse.",
		"A slip is a data point, a collapse is a decision.",
		"I logged the slip, skipped the guilt, and showed up the next day.",
	}},
	{"THE RESULTS", []string{
		"By the end, the numbers told a clearer story than my feelings did.",
		"Some of the promised benefits showed up, smaller and slower than advertised.",
		"One unadvertised benefit turned out to be the best part of the whole thing.",
		"The headline version: it works, but not for the reasons the internet says it does.",
	}},
	{"WHAT I'D TELL YOU", []string{
		"If you try this yourself, start smaller than your enthusiasm wants you to.",
		"Track from day one, because memory is a flattering historian.",
		"Expect the dip in the middle and decide now what you will do when it comes.",
		"Whether you adopt it permanently matters less than what the experiment teaches you about yourself.",
	}},
}

// historicalBeats are the fixed narrative sections for history titles.
var historicalBeats = []struct {
	name      string
	sentences []string
}{
	{"THE WORLD BEFORE", []string{
		"To understand why this mattered, you have to picture the world before it.",
		"What seems obvious today was unthinkable then, and the people involved had no script.",
		"The constraints of the era shaped every decision that followed.",
		"Context is the difference between a trivia fact and an actual story.",
	}},
	{"THE TURNING POINT", []string{
		"Then came the moment everything pivoted on, and almost nobody recognized it at the time.",
		"The decisive factor was not genius or luck alone, but the collision of both with timing.",
		"Contemporaries dismissed it, rivals mocked it, and history sided with neither.",
		"What looks inevitable in hindsight was a coin toss in the moment.",
	}},
	{"THE PRICE", []string{
		"Every breakthrough in this story came with a bill, and someone always paid it.",
		"The cost was counted in years, reputations, and sometimes lives.",
		"The textbooks keep the triumph and quietly drop the invoice.",
		"Knowing the price is what separates admiration from understanding.",
	}},
	{"THE RIPPLE EFFECT", []string{
		"The consequences spread far beyond anything the people involved intended.",
		"Entire industries, borders, and beliefs rearranged themselves downstream of this.",
		"Second-order effects took decades to surface, and some are still surfacing.",
		"History is less a chain of events than a chain of side effects.",
	}},
	{"WHY IT STILL MATTERS", []string{
		"This is not a museum piece, the same pattern is running right now.",
		"Swap the names and the technology, and the story maps onto this decade cleanly.",
		"The people who recognize the pattern early are the ones history remembers next.",
		"That is the real reason to know this story at all.",
	}},
}

// educationalBeats are the fallback narrative sections.
var educationalBeats = []struct {
	name      string
	sentences []string
}{
	{"THE SURPRISING TRUTH", []string{
		"Most of what people believe about %TOPIC% is somewhere between outdated and backwards.",
		"The popular version survives because it is simple, not because it is right.",
		"The actual picture is stranger and considerably more useful.",
		"Once you see it, the old version stops making sense.",
	}},
	{"HOW IT ACTUALLY WORKS", []string{
		"Strip away the jargon and the core mechanism is something you can explain over coffee.",
		"A few moving parts interact, and the interesting behavior lives in the interaction.",
		"Researchers worked this out step by step, mostly by being wrong in useful ways.",
		"Understanding the mechanism is what turns trivia into leverage.",
	}},
	{"WHAT THIS MEANS FOR YOU", []string{
		"This is not abstract, it touches decisions you make every week.",
		"Knowing it changes what you optimize for and what you stop worrying about.",
		"The practical version fits in one sentence, and you now have it.",
		"Most people never will, which is quietly an advantage.",
	}},
	{"THE BIGGER PICTURE", []string{
		"Zoom out and this connects to a pattern that shows up across completely different fields.",
		"The same shape appears in economics, biology, and your own habits.",
		"Patterns that general are rare, and they are worth collecting.",
		"This is one for the collection.",
	}},
}

// elaborations are generic padding beats appended to unit sections when a
// script comes in under its word target. Kept topic-neutral so any family
// can absorb them.
var elaborations = []string{
	"Here's the part most people miss: this only compounds if you keep it small enough to survive your worst week, so build the floor version first and raise it later.",
	"Think about the last time you tried something like this and it fizzled. Odds are the plan assumed your best days, and real life billed you for the average ones.",
	"A good test is to explain it to someone else in one sentence. If the sentence needs three clauses and an asterisk, simplify until it doesn't.",
	"Write this one down somewhere you'll actually see it again. The ideas that change behavior are the ones that resurface at the moment of decision.",
	"And if it helps, give yourself a two-week trial before judging the results. Almost nothing useful shows its value inside the first few days.",
	"The mistake is treating this as all-or-nothing. Partial credit counts here, and a sloppy version done consistently beats a perfect version done twice.",
	"Notice how this connects to everything else on the list. These aren't isolated tricks, they're the same principle wearing different clothes.",
	"One warning before moving on: don't try to adopt everything at once. Pick the single item that stung a little when you heard it, and start there.",
	"There's a quiet confidence that comes from doing this even once. The second time is easier, and by the tenth it's just who you are.",
	"If you only remember one thing from this section, make it this: the system you'll actually follow beats the system that impresses people.",
}
