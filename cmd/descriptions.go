package cmd

const rootLongDescription = `Fretwork converts MIDI tracks into playable guitar tablature.

It detects the track's key, picks a comfortable starting region on the
fretboard, maps every note onto the (string, fret) position that keeps
hand movement small while staying inside the detected scale, and
renders the result as wrapped ASCII tab staves.`

const tracksLongDescription = `List the tracks of a MIDI file with their names and note counts,
so you can pick which one to render.`

const renderLongDescription = `Render guitar tablature for one track of a MIDI file.

The key is detected from the track's notes unless --key overrides it.
Use --width to control how many columns are shown before the staff
wraps to a new block, and --tui to page through long tabs
interactively.`

const exportLongDescription = `Render tablature and save it as a YAML report next to the MIDI file
(or under --out). With --all, every renderable track of the file is
exported; tracks without notes or without playable positions are
skipped.`
