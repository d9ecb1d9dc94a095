package snapscroll

const Version = `0.1.2`
const Slogan = `Scroll snapping for browsers that never learned how.`
